package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"macs-platform/models"
)

// EmailNotifier renders booking and contribution emails. Transport is a
// log-only stub: rendered messages are written to the log instead of SMTP,
// the same way the platform runs in demo environments.
type EmailNotifier struct {
	From     string
	FromName string
}

func NewEmailNotifier(from, fromName string) *EmailNotifier {
	return &EmailNotifier{From: from, FromName: fromName}
}

var bookingClientTmpl = template.Must(template.New("bookingClient").Parse(`<!DOCTYPE html>
<html>
<body>
  <h1>🎨 MACS Platform</h1>
  <h2>Booking Request Submitted!</h2>
  <p>Hi {{.ClientName}},</p>
  <p>Thank you for your booking request! It has been sent to <strong>{{.ArtistName}}</strong> for review.</p>
  <h3>📅 Booking Details</h3>
  <p><strong>Artist:</strong> {{.ArtistName}}</p>
  <p><strong>Service:</strong> {{.Service}}</p>
  <p><strong>Date:</strong> {{.Date}}</p>
  <p><strong>Time:</strong> {{.Time}}</p>
  <p><strong>Status:</strong> ⏳ Awaiting Confirmation</p>
  <h4>💬 Your Message:</h4>
  <p><em>"{{.Message}}"</em></p>
  <p>The artist will review your request within 24 hours. You'll receive an email when they respond.</p>
  <p>Best regards,<br>The MACS Platform Team</p>
</body>
</html>`))

var bookingArtistTmpl = template.Must(template.New("bookingArtist").Parse(`<!DOCTYPE html>
<html>
<body>
  <h1>🎨 MACS Platform</h1>
  <h2>New Booking Request!</h2>
  <p>Hi {{.ArtistName}},</p>
  <h3>👤 Client Information</h3>
  <p><strong>Name:</strong> {{.ClientName}}</p>
  <p><strong>Email:</strong> {{.ClientEmail}}</p>
  <h3>📅 Requested Booking</h3>
  <p><strong>Service:</strong> {{.Service}}</p>
  <p><strong>Date:</strong> {{.Date}}</p>
  <p><strong>Time:</strong> {{.Time}}</p>
  <h4>💬 Client's Message:</h4>
  <p><em>"{{.Message}}"</em></p>
  <p>Please respond within 24 hours to maintain a good response rate.</p>
  <p>Best regards,<br>The MACS Platform Team</p>
</body>
</html>`))

var statusUpdateTmpl = template.Must(template.New("statusUpdate").Parse(`<!DOCTYPE html>
<html>
<body>
  <h1>🎨 MACS Platform</h1>
  <h2>Booking Status Update</h2>
  <p>Hi {{.ClientName}},</p>
  <p>{{.Lead}}</p>
  <h3>📅 Booking Details</h3>
  <p><strong>Artist:</strong> {{.ArtistName}}</p>
  <p><strong>Service:</strong> {{.Service}}</p>
  <p><strong>Date:</strong> {{.Date}}</p>
  <p><strong>Time:</strong> {{.Time}}</p>
  <p><strong>Status:</strong> {{.StatusText}}</p>
  <p>Thank you for using MACS Platform to connect with amazing artists!</p>
  <p>Best regards,<br>The MACS Platform Team</p>
</body>
</html>`))

var contributionTmpl = template.Must(template.New("contribution").Parse(`<!DOCTYPE html>
<html>
<body>
  <h1>🎨 MACS Platform</h1>
  <h2>Thank You for Your Contribution!</h2>
  <p>Hi {{.ContributorName}},</p>
  <p>Your contribution of <strong>${{.Amount}}</strong> to <strong>{{.CampaignTitle}}</strong> has been recorded.</p>
  <p><strong>Reference:</strong> {{.Reference}}</p>
  <p>The campaign has now raised ${{.CurrentAmount}} of its ${{.TargetAmount}} goal.</p>
  <p>Best regards,<br>The MACS Platform Team</p>
</body>
</html>`))

func (n *EmailNotifier) BookingCreated(ctx context.Context, booking models.Booking, artist models.Artist) error {
	date, tod := emailDateTime(booking.DateTime)

	clientSubject := fmt.Sprintf("Booking Request Submitted - %s", artist.Name)
	err := n.send(booking.ClientEmail, clientSubject, bookingClientTmpl, map[string]string{
		"ClientName": booking.ClientName,
		"ArtistName": artist.Name,
		"Service":    booking.Service,
		"Date":       date,
		"Time":       tod,
		"Message":    booking.Message,
	})
	if err != nil {
		return err
	}

	artistSubject := fmt.Sprintf("New Booking Request from %s", booking.ClientName)
	return n.send(artist.Email, artistSubject, bookingArtistTmpl, map[string]string{
		"ArtistName":  artist.Name,
		"ClientName":  booking.ClientName,
		"ClientEmail": booking.ClientEmail,
		"Service":     booking.Service,
		"Date":        date,
		"Time":        tod,
		"Message":     booking.Message,
	})
}

func (n *EmailNotifier) BookingStatusChanged(ctx context.Context, booking models.Booking, artistName, newStatus string) error {
	date, tod := emailDateTime(booking.DateTime)

	subject := fmt.Sprintf("Booking Update - %s", artistName)
	lead := fmt.Sprintf("Unfortunately, %s is not available for your requested time slot.", artistName)
	statusText := "❌ Declined"
	if newStatus == models.BookingConfirmed {
		subject = fmt.Sprintf("Booking Confirmed - %s", artistName)
		lead = fmt.Sprintf("Great news! %s has confirmed your booking request.", artistName)
		statusText = "✅ Confirmed"
	}

	return n.send(booking.ClientEmail, subject, statusUpdateTmpl, map[string]string{
		"ClientName": booking.ClientName,
		"ArtistName": artistName,
		"Service":    booking.Service,
		"Date":       date,
		"Time":       tod,
		"Lead":       lead,
		"StatusText": statusText,
	})
}

func (n *EmailNotifier) ContributionReceived(ctx context.Context, contribution models.Contribution, campaign models.Campaign) error {
	subject := fmt.Sprintf("Contribution Received - %s", campaign.Title)
	return n.send(contribution.ContributorEmail, subject, contributionTmpl, map[string]string{
		"ContributorName": contribution.ContributorName,
		"Amount":          contribution.Amount.StringFixed(2),
		"CampaignTitle":   campaign.Title,
		"Reference":       contribution.Reference,
		"CurrentAmount":   campaign.CurrentAmount.StringFixed(2),
		"TargetAmount":    campaign.TargetAmount.StringFixed(2),
	})
}

func (n *EmailNotifier) send(to, subject string, tmpl *template.Template, data map[string]string) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render email %q: %w", subject, err)
	}

	log.Printf("\n=== EMAIL NOTIFICATION ===\nFrom: %s <%s>\nTo: %s\nSubject: %s\n%s\n=========================\n",
		n.FromName, n.From, to, subject, body.String())
	return nil
}

func emailDateTime(t time.Time) (string, string) {
	utc := t.UTC()
	return utc.Format("Monday, January 2, 2006"), utc.Format("3:04 PM")
}
