package services

import (
	"context"
	"log/slog"
	"time"

	pubnub "github.com/pubnub/go"

	"macs-platform/models"
	"macs-platform/monitoring"
	"macs-platform/utils"
)

// Notifier delivers one notification. Errors are reported to the caller so it
// can log them; they must never fail the request that raised the event.
type Notifier interface {
	BookingCreated(ctx context.Context, booking models.Booking, artist models.Artist) error
	BookingStatusChanged(ctx context.Context, booking models.Booking, artistName, newStatus string) error
	ContributionReceived(ctx context.Context, contribution models.Contribution, campaign models.Campaign) error
}

type notificationEvent struct {
	kind         string
	booking      models.Booking
	artist       models.Artist
	newStatus    string
	contribution models.Contribution
	campaign     models.Campaign
}

// NotificationService is the fire-and-forget outbox between mutations and the
// notification collaborator. Publish hands the event to a buffered channel and
// returns immediately; a background worker performs delivery. When PubNub keys
// are configured, events are also broadcast to a per-artist channel.
type NotificationService struct {
	notifier Notifier
	pn       *pubnub.PubNub
	breaker  *utils.CircuitBreaker
	events   chan notificationEvent
}

func NewNotificationService(notifier Notifier, pn *pubnub.PubNub, buffer int) *NotificationService {
	if buffer <= 0 {
		buffer = 64
	}
	return &NotificationService{
		notifier: notifier,
		pn:       pn,
		breaker:  utils.NewCircuitBreaker("notifier", 5, 30*time.Second),
		events:   make(chan notificationEvent, buffer),
	}
}

// Start runs the delivery worker until ctx is cancelled.
func (s *NotificationService) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.events:
			s.deliver(ctx, ev)
		}
	}
}

func (s *NotificationService) PublishBookingCreated(booking models.Booking, artist models.Artist) {
	s.enqueue(notificationEvent{kind: "booking_created", booking: booking, artist: artist})
}

func (s *NotificationService) PublishStatusChanged(booking models.Booking, artistName, newStatus string) {
	s.enqueue(notificationEvent{
		kind:      "booking_status_changed",
		booking:   booking,
		artist:    models.Artist{Name: artistName},
		newStatus: newStatus,
	})
}

func (s *NotificationService) PublishContributionReceived(contribution models.Contribution, campaign models.Campaign) {
	s.enqueue(notificationEvent{kind: "contribution_received", contribution: contribution, campaign: campaign})
}

// enqueue never blocks the caller. A full buffer drops the event with a log
// line; notifications are best-effort.
func (s *NotificationService) enqueue(ev notificationEvent) {
	select {
	case s.events <- ev:
	default:
		slog.Warn("notification buffer full, dropping event", "kind", ev.kind)
	}
}

func (s *NotificationService) deliver(ctx context.Context, ev notificationEvent) {
	err := s.breaker.Execute(ctx, func() error {
		switch ev.kind {
		case "booking_created":
			return s.notifier.BookingCreated(ctx, ev.booking, ev.artist)
		case "booking_status_changed":
			return s.notifier.BookingStatusChanged(ctx, ev.booking, ev.artist.Name, ev.newStatus)
		case "contribution_received":
			return s.notifier.ContributionReceived(ctx, ev.contribution, ev.campaign)
		}
		return nil
	})
	if err != nil {
		slog.Error("notification delivery failed", "kind", ev.kind, "error", err)
	}
	monitoring.RecordNotification(ev.kind, err == nil)

	s.broadcast(ev)
}

// broadcast mirrors the event to PubNub for realtime dashboards. Best-effort.
func (s *NotificationService) broadcast(ev notificationEvent) {
	if s.pn == nil {
		return
	}

	channel := "artist_" + ev.booking.ArtistID
	message := map[string]any{
		"type":       ev.kind,
		"booking_id": ev.booking.ID,
		"status":     ev.booking.Status,
	}
	if ev.kind == "contribution_received" {
		channel = "campaign_" + ev.campaign.ID
		message = map[string]any{
			"type":           ev.kind,
			"campaign_id":    ev.campaign.ID,
			"current_amount": ev.campaign.CurrentAmount.String(),
		}
	}

	s.pn.Publish().
		Channel(channel).
		Message(message).
		Execute()
}
