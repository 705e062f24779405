package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/devisio-app/devisio-backend/api/controllers"
	"github.com/devisio-app/devisio-backend/api/middleware"
	"github.com/devisio-app/devisio-backend/internal/payments"
	"github.com/devisio-app/devisio-backend/internal/quotes"
	"github.com/devisio-app/devisio-backend/internal/users"
	"github.com/devisio-app/devisio-backend/internal/works"
	"github.com/devisio-app/devisio-backend/pkg/config"
	"github.com/devisio-app/devisio-backend/pkg/db"
	"github.com/devisio-app/devisio-backend/pkg/logger"
	"github.com/devisio-app/devisio-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	userService users.Service,
	quoteService quotes.Service,
	workService works.Service,
	paymentService payments.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, logg))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.Register(userService, logg))
		r.Post("/login", controllers.Login(userService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/users/me", func(r chi.Router) {
			r.Get("/", controllers.Profile(userService, logg))
			r.Put("/", controllers.ProfileUpdate(userService, logg))
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", controllers.QuoteList(quoteService, logg))
			r.Post("/", controllers.QuoteCreate(quoteService, logg))
			r.Get("/{quoteID}", controllers.QuoteGet(quoteService, logg))
			r.Put("/{quoteID}", controllers.QuoteUpdate(quoteService, logg))
			r.Delete("/{quoteID}", controllers.QuoteDelete(quoteService, logg))
		})

		r.Route("/works", func(r chi.Router) {
			r.Get("/", controllers.WorkList(workService, logg))
			r.Post("/", controllers.WorkCreate(workService, logg))
			r.Get("/{workID}", controllers.WorkGet(workService, logg))
			r.Put("/{workID}", controllers.WorkUpdate(workService, logg))
			r.Delete("/{workID}", controllers.WorkDelete(workService, logg))
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", controllers.PaymentList(paymentService, logg))
			r.Post("/credit", controllers.PaymentAddCredit(paymentService, logg))
		})
	})

	return r
}
