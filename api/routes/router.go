package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillswaphq/skillswap-backend/api/controllers"
	"github.com/skillswaphq/skillswap-backend/api/middleware"
	"github.com/skillswaphq/skillswap-backend/internal/analytics"
	"github.com/skillswaphq/skillswap-backend/internal/feedback"
	"github.com/skillswaphq/skillswap-backend/internal/messages"
	"github.com/skillswaphq/skillswap-backend/internal/search"
	"github.com/skillswaphq/skillswap-backend/internal/swaps"
	"github.com/skillswaphq/skillswap-backend/internal/users"
	"github.com/skillswaphq/skillswap-backend/pkg/config"
	"github.com/skillswaphq/skillswap-backend/pkg/logger"
	"github.com/skillswaphq/skillswap-backend/pkg/metrics"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	HTTPMetrics *metrics.HTTPMetrics
	MetricsH    http.Handler

	ReadyChecks []controllers.ReadyCheck

	Users     users.Service
	Swaps     swaps.Service
	Feedback  feedback.Service
	Messages  messages.Service
	Search    search.Service
	Analytics analytics.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.ReadyChecks...))
	})

	metricsHandler := deps.MetricsH
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.UserList(deps.Users, logg))
			r.Post("/", controllers.UserCreate(deps.Users, logg))
			r.Get("/{id}", controllers.UserGet(deps.Users, logg))
			r.Patch("/{id}", controllers.UserUpdate(deps.Users, logg))
		})

		r.Route("/swaps", func(r chi.Router) {
			r.Get("/", controllers.SwapList(deps.Swaps, logg))
			r.Post("/", controllers.SwapCreate(deps.Swaps, logg))
			r.Get("/{id}", controllers.SwapGet(deps.Swaps, logg))
			r.Patch("/{id}", controllers.SwapUpdateStatus(deps.Swaps, logg))
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Get("/", controllers.FeedbackList(deps.Feedback, logg))
			r.Post("/", controllers.FeedbackCreate(deps.Feedback, logg))
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", controllers.MessageList(deps.Messages, logg))
			r.Post("/", controllers.MessageCreate(deps.Messages, logg))
			r.Patch("/{id}", controllers.MessageUpdate(deps.Messages, logg))
			r.Delete("/{id}", controllers.MessageDelete(deps.Messages, logg))
		})

		r.Get("/search/users", controllers.SearchUsers(deps.Search, logg))
		r.Get("/analytics/dashboard", controllers.AnalyticsDashboard(deps.Analytics, logg))
	})

	return r
}
