package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/pruthagwin123/expense-tracker/internal/category"
	"github.com/pruthagwin123/expense-tracker/internal/expense"
	"github.com/pruthagwin123/expense-tracker/internal/report"
	"github.com/pruthagwin123/expense-tracker/internal/transport/middleware"
	"github.com/pruthagwin123/expense-tracker/internal/transport/swagger"
	"github.com/pruthagwin123/expense-tracker/internal/user"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	userHandler *user.Handler,
	categoryHandler *category.Handler,
	expenseHandler *expense.Handler,
	reportHandler *report.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Everything below needs a caller identity from the gateway
		r.Group(func(pr chi.Router) {
			pr.Use(middleware.Identity)

			if userHandler != nil {
				pr.Get("/users/me", userHandler.GetCurrentUser)
			}

			if categoryHandler != nil {
				pr.Route("/categories", func(cr chi.Router) {
					cr.Get("/", categoryHandler.ListCategories)
					cr.Post("/", categoryHandler.CreateCategory)
				})
			}

			if expenseHandler != nil {
				pr.Route("/expenses", func(er chi.Router) {
					er.Post("/", expenseHandler.CreateExpense)
					er.Get("/", expenseHandler.ListExpenses)
				})
			}

			if reportHandler != nil {
				pr.Route("/reports", func(rr chi.Router) {
					rr.Get("/summary", reportHandler.GetSummary)
					rr.Get("/csv", reportHandler.DownloadCSV)
					rr.Get("/pdf", reportHandler.DownloadPDF)
					rr.Post("/email", reportHandler.EmailReport)
				})
			}
		})
	})
}
