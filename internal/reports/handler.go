package reports

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/finix-labs/insights/internal/insights"
)

// NewInsightsHandler returns the standard worker handler: it runs the full
// analytics pipeline over the job's transaction batch and stores the report
// on the job.
func NewInsightsHandler(log zerolog.Logger) Handler {
	return func(ctx context.Context, job *ReportJob) error {
		report, err := insights.BuildReport(job.Transactions, job.HorizonDays)
		if err != nil {
			log.Error().Err(err).Str("job_id", job.JobID).Msg("Report build failed")
			return fmt.Errorf("build report: %w", err)
		}

		job.Result = report

		log.Info().
			Str("job_id", job.JobID).
			Int("transactions", len(report.Transactions)).
			Int("fraud_alerts", len(report.FraudAlerts)).
			Msg("Report built")

		return nil
	}
}
