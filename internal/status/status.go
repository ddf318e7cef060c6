package status

import (
	"errors"
	"fmt"
)

var (
	ErrBookingNotFound  = errors.New("booking: booking not found")
	ErrNotPending       = errors.New("booking: booking is not in pending status")
	ErrInvalidAction    = errors.New("booking: invalid action, must be \"accept\" or \"decline\"")
	ErrCampaignNotFound = errors.New("campaign: campaign not found")
	ErrCampaignInactive = errors.New("campaign: campaign is not active")
	ErrDeadlinePassed   = errors.New("campaign: campaign deadline has passed")
)

// SlotUnavailableError carries the resolver's reason for a slot conflict.
type SlotUnavailableError struct {
	Reason string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot: %s", e.Reason)
}

// ValidationError marks a missing or malformed request field.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsSlotUnavailable(err error) bool {
	var se *SlotUnavailableError
	return errors.As(err, &se)
}
