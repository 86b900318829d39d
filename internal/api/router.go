package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/finix-labs/insights/internal/api/handlers"
	"github.com/finix-labs/insights/internal/api/middleware"
)

// NewRouter assembles the HTTP surface: the per-request insight endpoints,
// the async report endpoints, and the middleware chain.
func NewRouter(ih *handlers.InsightsHandler, rh *handlers.ReportsHandler, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS)

	r.Get("/", ih.Root)
	r.Get("/health", ih.Health)

	r.Get("/mock-sms", ih.MockSMS)
	r.Get("/categorize", ih.Categorize)
	r.Get("/fraud", ih.Fraud)
	r.Get("/fingerprint", ih.Fingerprint)
	r.Get("/forecast", ih.Forecast)
	r.Get("/financial-tip/{category}", ih.FinancialTip)

	r.Post("/upload", rh.Upload)
	r.Get("/api/reports", rh.ListReports)
	r.Get("/api/reports/{id}", rh.GetReport)

	return r
}
