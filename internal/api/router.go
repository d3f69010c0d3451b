package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/thinktwice/finance-dashboard-backend/internal/api/handlers"
	custommiddleware "github.com/thinktwice/finance-dashboard-backend/internal/api/middleware"
	"github.com/thinktwice/finance-dashboard-backend/internal/config"
	"github.com/thinktwice/finance-dashboard-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	db *sql.DB,
	dashboardService *service.DashboardService,
	transactionService *service.TransactionService,
	profileService *service.ProfileService,
	alertService *service.AlertService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// Transport guard (disabled when no API key is configured)
	r.Use(custommiddleware.APIKey(cfg.Security.APIKey))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(db)
			r.Get("/health", systemHandler.Health)
		})

		r.Route("/dashboard", func(r chi.Router) {
			dashboardHandler := handlers.NewDashboardHandler(dashboardService, transactionService)
			r.Get("/", dashboardHandler.Dashboard)
			r.Post("/refresh", dashboardHandler.Refresh)
			r.Get("/simulate/{uuid}", dashboardHandler.Simulate)
		})

		r.Route("/transaction", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(transactionService)
			r.Get("/", transactionHandler.AllTransactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Post("/import", transactionHandler.ImportTransactions)
			r.Get("/{uuid}", transactionHandler.GetTransaction)
			r.Delete("/{uuid}", transactionHandler.DeleteTransaction)
		})

		r.Route("/profile", func(r chi.Router) {
			profileHandler := handlers.NewProfileHandler(profileService)
			r.Get("/", profileHandler.GetProfile)
			r.Put("/", profileHandler.UpdateProfile)
		})

		r.Route("/alerts", func(r chi.Router) {
			alertHandler := handlers.NewAlertHandler(alertService)
			r.Get("/history", alertHandler.History)
		})
	})

	return r
}
