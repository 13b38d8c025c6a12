package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/jdelarosa/finanzas-api/internal/analytics"
	"github.com/jdelarosa/finanzas-api/internal/auth"
	"github.com/jdelarosa/finanzas-api/internal/category"
	"github.com/jdelarosa/finanzas-api/internal/report"
	"github.com/jdelarosa/finanzas-api/internal/transaction"
	"github.com/jdelarosa/finanzas-api/internal/transport/middleware"
	"github.com/jdelarosa/finanzas-api/internal/transport/swagger"
	"github.com/jdelarosa/finanzas-api/internal/user"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	allowedOrigins string,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	categoryHandler *category.Handler,
	transactionHandler *transaction.Handler,
	reportHandler *report.Handler,
	analyticsHandler *analytics.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Everything else needs a verified session
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			if userHandler != nil {
				pr.Get("/users/me", userHandler.GetCurrentUser)
			}

			if categoryHandler != nil {
				pr.Route("/categories", func(cr chi.Router) {
					cr.Get("/", categoryHandler.GetCategories)
					cr.Post("/", categoryHandler.CreateCategory)
					cr.Patch("/{id}", categoryHandler.UpdateCategory)
					cr.Delete("/{id}", categoryHandler.DeleteCategory)
				})
			}

			if transactionHandler != nil {
				pr.Route("/transactions", func(tr chi.Router) {
					tr.Get("/", transactionHandler.GetTransactions)
					tr.Post("/", transactionHandler.CreateTransaction)
					tr.Patch("/{id}", transactionHandler.UpdateTransaction)
					tr.Delete("/{id}", transactionHandler.DeleteTransaction)
				})
			}

			if reportHandler != nil {
				pr.Route("/reports", func(rr chi.Router) {
					rr.Get("/monthly", reportHandler.GetMonthlyReport)
					rr.Get("/monthly/export", reportHandler.ExportMonthlyReport)
				})
			}

			if analyticsHandler != nil {
				pr.Route("/analytics", func(ar chi.Router) {
					ar.Get("/overview", analyticsHandler.GetOverview)
					ar.Get("/trends", analyticsHandler.GetTrends)
					ar.Get("/active-days", analyticsHandler.GetActiveDays)
				})
			}
		})
	})
}
