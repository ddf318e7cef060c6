package models

// ArtistAvailability holds an artist's bookable hours. DefaultHours applies to
// any date without an override. An override, when present, replaces the
// default hours for that date entirely; an empty (non-nil) override list marks
// the whole date as unavailable.
type ArtistAvailability struct {
	ArtistID     string              `json:"artistId"`
	DefaultHours []string            `json:"defaultHours"`
	Overrides    map[string][]string `json:"customAvailability"` // keyed by YYYY-MM-DD
}

// HoursFor resolves the effective slot list for a date.
func (a ArtistAvailability) HoursFor(date string) []string {
	if hours, ok := a.Overrides[date]; ok {
		return hours
	}
	return a.DefaultHours
}
