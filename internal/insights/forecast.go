package insights

import (
	"sort"
	"time"

	"github.com/finix-labs/insights/internal/domain"
)

// Trend is the direction of a fitted spending line.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
)

// DayProjection is one forecasted future day.
type DayProjection struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// ForecastResult holds the fitted trend direction and the projected values
// for the requested horizon, in chronological order.
type ForecastResult struct {
	Trend    Trend           `json:"trend"`
	NextDays []DayProjection `json:"next_days"`
}

// Forecast fits an ordinary least-squares line per category over daily amount
// sums and projects horizonDays consecutive days starting the day after the
// latest observation. Projected amounts are rounded to two decimals.
//
// Unlike the other components, daily sums include both debits and credits;
// consumers should account for the mixed series. Categories with fewer than
// two distinct dates carry no trend and are silently skipped. A zero slope
// classifies as decreasing. Returns ErrUncategorized if any transaction is
// missing its category.
func Forecast(txs []domain.Transaction, horizonDays int) (map[domain.Category]ForecastResult, error) {
	if err := requireCategorized(txs); err != nil {
		return nil, err
	}

	daily := make(map[domain.Category]map[time.Time]int64)
	for _, tx := range txs {
		day := time.Date(tx.Date.Year(), tx.Date.Month(), tx.Date.Day(), 0, 0, 0, 0, time.UTC)
		if daily[tx.Category] == nil {
			daily[tx.Category] = make(map[time.Time]int64)
		}
		daily[tx.Category][day] += tx.Amount
	}

	results := make(map[domain.Category]ForecastResult)
	for cat, sums := range daily {
		if len(sums) < 2 {
			continue
		}

		days := make([]time.Time, 0, len(sums))
		for day := range sums {
			days = append(days, day)
		}
		sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

		// Fit y = intercept + slope*x with x as days since the first
		// observation.
		first := days[0]
		var sumX, sumY, sumXY, sumXX float64
		for _, day := range days {
			x := day.Sub(first).Hours() / 24
			y := float64(sums[day])
			sumX += x
			sumY += y
			sumXY += x * y
			sumXX += x * x
		}
		n := float64(len(days))
		slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
		intercept := (sumY - slope*sumX) / n

		trend := TrendDecreasing
		if slope > 0 {
			trend = TrendIncreasing
		}

		last := days[len(days)-1]
		lastX := last.Sub(first).Hours() / 24
		nextDays := make([]DayProjection, 0, horizonDays)
		for i := 1; i <= horizonDays; i++ {
			future := last.AddDate(0, 0, i)
			nextDays = append(nextDays, DayProjection{
				Date:   future.Format(domain.DateFormat),
				Amount: round2(intercept + slope*(lastX+float64(i))),
			})
		}

		results[cat] = ForecastResult{Trend: trend, NextDays: nextDays}
	}

	return results, nil
}
