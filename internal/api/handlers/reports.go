package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/finix-labs/insights/internal/api/middleware"
	"github.com/finix-labs/insights/internal/domain"
	"github.com/finix-labs/insights/internal/reports"
)

// maxUploadBytes bounds upload reads; batches are capped around 100 records
// so anything larger is malformed input.
const maxUploadBytes = 1 << 20

// ReportsHandler serves the asynchronous report endpoints: batch upload and
// job polling.
type ReportsHandler struct {
	publisher reports.Publisher
	store     reports.Store
	log       zerolog.Logger
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(publisher reports.Publisher, store reports.Store, log zerolog.Logger) *ReportsHandler {
	return &ReportsHandler{
		publisher: publisher,
		store:     store,
		log:       log,
	}
}

// Upload handles POST /upload. It accepts a JSON array of raw transactions,
// either as a multipart "file" part or as the request body, and enqueues a
// report job for it.
func (h *ReportsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	body, filename, err := uploadPayload(r)
	if err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Could not read upload")
		return
	}

	var txs []domain.Transaction
	if err := json.Unmarshal(body, &txs); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Upload must be a JSON array of transactions")
		return
	}
	if len(txs) == 0 {
		middleware.WriteError(w, http.StatusBadRequest, "Upload contains no transactions")
		return
	}

	job := &reports.ReportJob{
		Filename:     filename,
		Transactions: txs,
	}
	if err := h.publisher.PublishReport(r.Context(), job); err != nil {
		h.log.Error().Err(err).Msg("Failed to enqueue report job")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to enqueue report")
		return
	}

	h.log.Info().
		Str("job_id", job.JobID).
		Str("filename", filename).
		Int("transactions", len(txs)).
		Msg("Report job enqueued")

	middleware.WriteJSON(w, http.StatusAccepted, map[string]string{
		"job_id":   job.JobID,
		"filename": filename,
		"status":   string(job.Status),
	})
}

// uploadPayload extracts the uploaded bytes and filename from either a
// multipart form or a raw request body.
func uploadPayload(r *http.Request) ([]byte, string, error) {
	if file, header, err := r.FormFile("file"); err == nil {
		defer file.Close()
		body, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
		if err != nil {
			return nil, "", err
		}
		return body, header.Filename, nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		return nil, "", err
	}
	return body, "", nil
}

// GetReport handles GET /api/reports/{id}
func (h *ReportsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "id")

	job, err := h.store.GetJob(r.Context(), jobID)
	if err != nil {
		h.log.Error().Err(err).Str("job_id", jobID).Msg("Failed to get report job")
		middleware.WriteError(w, http.StatusNotFound, "Report not found")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, job)
}

// ListReports handles GET /api/reports
func (h *ReportsHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := reports.Filter{
		Status: reports.JobStatus(query.Get("status")),
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			filter.Limit = limit
		}
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			filter.Offset = offset
		}
	}

	jobsList, err := h.store.ListJobs(r.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list report jobs")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list reports")
		return
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"reports": jobsList,
		"count":   len(jobsList),
	})
}
