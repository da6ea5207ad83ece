package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/heartsafe-training/booking-api/internal/booking"
	httpmiddleware "github.com/heartsafe-training/booking-api/internal/http/middleware"
	"github.com/heartsafe-training/booking-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	BookingHandler     *booking.Handler
	ReminderSecret     string
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Route("/bookings", func(b chi.Router) {
			b.Use(httpmiddleware.RateLimit(2, 5))
			b.Post("/", cfg.BookingHandler.Create)
			b.Post("/cancel", cfg.BookingHandler.Cancel)
		})

		// Invoked by the external scheduler; guarded by the shared secret.
		api.With(requireReminderSecret(cfg.ReminderSecret)).
			Post("/reminders/sweep", cfg.BookingHandler.RunSweep)
	})

	return r
}
