package monitoring

import (
	"context"
	"log"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

var (
	bookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Bookings created per artist",
		},
		[]string{"artist_id"},
	)

	bookingTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_transitions_total",
			Help: "Booking status transitions per artist and status",
		},
		[]string{"artist_id", "status"},
	)

	slotConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slot_conflicts_total",
			Help: "Booking requests rejected by the availability resolver",
		},
		[]string{"artist_id"},
	)

	campaignFunding = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "campaign_funding_amount",
			Help: "Current funded amount per campaign",
		},
		[]string{"campaign_id"},
	)

	contributions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contributions_total",
			Help: "Accepted contributions per campaign",
		},
		[]string{"campaign_id"},
	)

	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Notification deliveries by kind and outcome",
		},
		[]string{"kind", "status"},
	)

	goroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_goroutines_total",
			Help: "Current number of goroutines",
		},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

func RecordBookingCreated(artistID string) {
	bookingsCreated.WithLabelValues(artistID).Inc()
}

func RecordBookingTransition(artistID, status string) {
	bookingTransitions.WithLabelValues(artistID, status).Inc()
}

func RecordSlotConflict(artistID string) {
	slotConflicts.WithLabelValues(artistID).Inc()
}

func RecordContribution(campaignID string, currentAmount decimal.Decimal) {
	contributions.WithLabelValues(campaignID).Inc()
	amount, _ := currentAmount.Float64()
	campaignFunding.WithLabelValues(campaignID).Set(amount)
}

func RecordNotification(kind string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	notifications.WithLabelValues(kind, outcome).Inc()
}

// HTTPMetrics observes request latency per route.
func HTTPMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			httpDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Serve exposes /metrics on its own port and samples runtime gauges until ctx
// is cancelled.
func Serve(ctx context.Context, port string) {
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				goroutineCount.Set(float64(runtime.NumGoroutine()))
			}
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: ":" + port, Handler: mux}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	log.Printf("Metrics server listening on :%s", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
