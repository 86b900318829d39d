package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/finix-labs/insights/internal/api/middleware"
	"github.com/finix-labs/insights/internal/domain"
	"github.com/finix-labs/insights/internal/insights"
)

// TransactionSource produces a fresh synthetic transaction batch per call.
// Satisfied by generator.Generator; mocked in tests.
type TransactionSource interface {
	Transactions(count int) []domain.Transaction
}

// InsightsHandler serves the per-request analytics endpoints. Every request
// draws a fresh dataset from the source, runs the categorizer pre-pass, and
// computes its insight from scratch; nothing is cached between calls.
type InsightsHandler struct {
	source TransactionSource
	count  int
	log    zerolog.Logger
}

// NewInsightsHandler creates the analytics endpoint handler. count is the
// dataset size drawn per request.
func NewInsightsHandler(source TransactionSource, count int, log zerolog.Logger) *InsightsHandler {
	return &InsightsHandler{
		source: source,
		count:  count,
		log:    log,
	}
}

// Root handles GET /
func (h *InsightsHandler) Root(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Finix insights backend is running!",
	})
}

// Health handles GET /health
func (h *InsightsHandler) Health(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// MockSMS handles GET /mock-sms, returning a raw uncategorized batch.
func (h *InsightsHandler) MockSMS(w http.ResponseWriter, r *http.Request) {
	txs := h.source.Transactions(h.count)
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": txs,
	})
}

// Categorize handles GET /categorize
func (h *InsightsHandler) Categorize(w http.ResponseWriter, r *http.Request) {
	txs := insights.CategorizeAll(h.source.Transactions(h.count))
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categorized_transactions": txs,
	})
}

// Fraud handles GET /fraud
func (h *InsightsHandler) Fraud(w http.ResponseWriter, r *http.Request) {
	txs := insights.CategorizeAll(h.source.Transactions(h.count))

	alerts, err := insights.DetectFraud(txs)
	if err != nil {
		h.log.Error().Err(err).Msg("Fraud detection failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to detect fraud")
		return
	}
	if alerts == nil {
		alerts = []insights.Alert{}
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"fraud_transactions": alerts,
	})
}

// Fingerprint handles GET /fingerprint
func (h *InsightsHandler) Fingerprint(w http.ResponseWriter, r *http.Request) {
	txs := insights.CategorizeAll(h.source.Transactions(h.count))

	fp, err := insights.BuildFingerprint(txs)
	if err != nil {
		h.log.Error().Err(err).Msg("Fingerprint build failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to build fingerprint")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"fingerprint": fp,
	})
}

// Forecast handles GET /forecast. The optional "days" query parameter
// overrides the default 7-day horizon.
func (h *InsightsHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	horizon := insights.DefaultHorizonDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 1 {
			middleware.WriteError(w, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		horizon = days
	}

	txs := insights.CategorizeAll(h.source.Transactions(h.count))

	forecast, err := insights.Forecast(txs, horizon)
	if err != nil {
		h.log.Error().Err(err).Msg("Forecast failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to forecast")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"forecast": forecast,
	})
}

// FinancialTip handles GET /financial-tip/{category}. Metrics are computed
// from a fresh analyzed dataset and fed to the tip rule table.
func (h *InsightsHandler) FinancialTip(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		middleware.WriteError(w, http.StatusBadRequest, "Category is required")
		return
	}

	txs := insights.CategorizeAll(h.source.Transactions(h.count))

	metrics, err := buildTipMetrics(category, txs)
	if err != nil {
		h.log.Error().Err(err).Str("category", category).Msg("Tip metrics failed")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to compute tip metrics")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{
		"tips": insights.Tip(category, metrics),
	})
}

// buildTipMetrics derives the single-category signals the tip rules read:
// total debit spend, forecast trend, a high-value spike flag, and the overall
// savings rate.
func buildTipMetrics(category string, txs []domain.Transaction) (insights.TipMetrics, error) {
	var m insights.TipMetrics

	fp, err := insights.BuildFingerprint(txs)
	if err != nil {
		return m, err
	}
	m.SavingsRate = fp.SavingsRate

	var spend float64
	for _, tx := range txs {
		if tx.Type == domain.TxnDebit && strings.EqualFold(string(tx.Category), category) {
			spend += float64(tx.Amount)
		}
	}
	m.Spend = spend

	forecast, err := insights.Forecast(txs, 1)
	if err != nil {
		return m, err
	}
	for cat, res := range forecast {
		if strings.EqualFold(string(cat), category) {
			m.Trend = res.Trend
		}
	}

	alerts, err := insights.DetectFraud(txs)
	if err != nil {
		return m, err
	}
	for _, a := range alerts {
		if !strings.EqualFold(string(a.Transaction.Category), category) {
			continue
		}
		for _, reason := range a.Reasons {
			if reason == insights.ReasonHighValue || reason == insights.ReasonUnusualFrequency {
				m.Spike = true
			}
		}
	}

	return m, nil
}
