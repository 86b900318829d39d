package insights

import (
	"fmt"

	"github.com/finix-labs/insights/internal/domain"
)

// DefaultHorizonDays is the forecast horizon used when the caller does not
// specify one.
const DefaultHorizonDays = 7

// Report bundles every insight computed from one transaction set.
type Report struct {
	Transactions []domain.Transaction               `json:"transactions"`
	FraudAlerts  []Alert                            `json:"fraud_alerts"`
	Fingerprint  Fingerprint                        `json:"fingerprint"`
	Forecast     map[domain.Category]ForecastResult `json:"forecast"`
}

// BuildReport runs the full pipeline over raw transactions: the categorizer
// pre-pass, then fraud detection, fingerprinting, and forecasting. The input
// is not mutated; the report holds categorized copies.
func BuildReport(txs []domain.Transaction, horizonDays int) (*Report, error) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	categorized := CategorizeAll(txs)

	alerts, err := DetectFraud(categorized)
	if err != nil {
		return nil, fmt.Errorf("detect fraud: %w", err)
	}

	fp, err := BuildFingerprint(categorized)
	if err != nil {
		return nil, fmt.Errorf("build fingerprint: %w", err)
	}

	forecast, err := Forecast(categorized, horizonDays)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	return &Report{
		Transactions: categorized,
		FraudAlerts:  alerts,
		Fingerprint:  fp,
		Forecast:     forecast,
	}, nil
}
