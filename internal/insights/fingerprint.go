package insights

import (
	"math"

	"github.com/finix-labs/insights/internal/domain"
)

// TrajectoryPoint is one debit observation in a category's spending history.
type TrajectoryPoint struct {
	Date   string `json:"date"`
	Amount int64  `json:"amount"`
}

// Fingerprint is an aggregate summary of spending behavior derived from one
// transaction set. All percentage fields are rounded to one decimal and the
// average to two.
type Fingerprint struct {
	// SpendingDistribution maps each category with at least one debit to its
	// percentage of total debit spend. Empty when there are no debits.
	SpendingDistribution map[domain.Category]float64 `json:"spending_distribution"`

	// AverageTransaction is the mean debit amount, 0 when there are no debits.
	AverageTransaction float64 `json:"average_transaction"`

	// FrequencyPerCategory counts all transactions per category, both debit
	// and credit.
	FrequencyPerCategory map[domain.Category]int `json:"frequency_per_category"`

	// SavingsRate is 100 * (credit - debit) / credit. It can go negative when
	// spending exceeds income and is 0 when there is no credit at all.
	SavingsRate float64 `json:"savings_rate"`

	// BehaviorTrajectory lists each category's debit observations in input
	// order.
	BehaviorTrajectory map[domain.Category][]TrajectoryPoint `json:"behavior_trajectory"`
}

// BuildFingerprint aggregates a categorized transaction set into a spending
// identity summary. Division-by-zero cases (no debits, no credits) resolve to
// zero values rather than errors. Returns ErrUncategorized if any transaction
// is missing its category.
func BuildFingerprint(txs []domain.Transaction) (Fingerprint, error) {
	if err := requireCategorized(txs); err != nil {
		return Fingerprint{}, err
	}

	fp := Fingerprint{
		SpendingDistribution: make(map[domain.Category]float64),
		FrequencyPerCategory: make(map[domain.Category]int),
		BehaviorTrajectory:   make(map[domain.Category][]TrajectoryPoint),
	}

	var totalDebit, totalCredit int64
	var debitCount int
	debitSums := make(map[domain.Category]int64)

	for _, tx := range txs {
		fp.FrequencyPerCategory[tx.Category]++

		switch tx.Type {
		case domain.TxnDebit:
			totalDebit += tx.Amount
			debitCount++
			debitSums[tx.Category] += tx.Amount
			fp.BehaviorTrajectory[tx.Category] = append(fp.BehaviorTrajectory[tx.Category], TrajectoryPoint{
				Date:   tx.DateString(),
				Amount: tx.Amount,
			})
		case domain.TxnCredit:
			totalCredit += tx.Amount
		}
	}

	if totalDebit > 0 {
		for cat, sum := range debitSums {
			fp.SpendingDistribution[cat] = round1(100 * float64(sum) / float64(totalDebit))
		}
	}
	if debitCount > 0 {
		fp.AverageTransaction = round2(float64(totalDebit) / float64(debitCount))
	}
	if totalCredit > 0 {
		fp.SavingsRate = round1(100 * float64(totalCredit-totalDebit) / float64(totalCredit))
	}

	return fp, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
