package insights

import (
	"github.com/finix-labs/insights/internal/domain"
)

// Alert reason names, attached in this fixed order.
const (
	ReasonHighValue        = "high_value"
	ReasonUnusualFrequency = "unusual_frequency"
	ReasonNovelMerchant    = "novel_merchant"
)

const (
	// highValueMultiplier flags debits above this multiple of the category's
	// mean debit amount.
	highValueMultiplier = 3.0

	// frequencyLimit is the maximum number of same-category transactions
	// allowed on a single day before the whole group is flagged.
	frequencyLimit = 5
)

// Alert is a transaction that triggered at least one fraud rule, together
// with the names of the rules it triggered. Reasons is non-empty by
// construction.
type Alert struct {
	Transaction domain.Transaction `json:"transaction"`
	Reasons     []string           `json:"reasons"`
}

// DetectFraud scans a categorized transaction set and returns an alert for
// every transaction that triggers at least one heuristic rule:
//
//   - high_value: a debit exceeding 3x the mean debit amount of its category
//     over the whole input set
//   - unusual_frequency: any transaction in a (category, date) group with
//     more than 5 members
//   - novel_merchant: the first occurrence of each distinct merchant in
//     input order
//
// The novel-merchant rule makes the input order part of the contract: callers
// must pass transactions in their original sequence. Alerts are emitted in
// input order and the input is never mutated. Returns ErrUncategorized if any
// transaction is missing its category.
func DetectFraud(txs []domain.Transaction) ([]Alert, error) {
	if err := requireCategorized(txs); err != nil {
		return nil, err
	}

	// Mean debit amount per category. Absent categories look up as 0.
	debitSums := make(map[domain.Category]int64)
	debitCounts := make(map[domain.Category]int)
	for _, tx := range txs {
		if tx.Type == domain.TxnDebit {
			debitSums[tx.Category] += tx.Amount
			debitCounts[tx.Category]++
		}
	}
	categoryMeans := make(map[domain.Category]float64, len(debitSums))
	for cat, sum := range debitSums {
		categoryMeans[cat] = float64(sum) / float64(debitCounts[cat])
	}

	// Transaction count per (category, date) group.
	type groupKey struct {
		category domain.Category
		date     string
	}
	groupCounts := make(map[groupKey]int)
	for _, tx := range txs {
		groupCounts[groupKey{tx.Category, tx.DateString()}]++
	}

	seenMerchants := make(map[string]bool, len(txs))
	var alerts []Alert
	for _, tx := range txs {
		var reasons []string

		if tx.Type == domain.TxnDebit && float64(tx.Amount) > highValueMultiplier*categoryMeans[tx.Category] {
			reasons = append(reasons, ReasonHighValue)
		}

		if groupCounts[groupKey{tx.Category, tx.DateString()}] > frequencyLimit {
			reasons = append(reasons, ReasonUnusualFrequency)
		}

		if !seenMerchants[tx.Merchant] {
			seenMerchants[tx.Merchant] = true
			reasons = append(reasons, ReasonNovelMerchant)
		}

		if len(reasons) > 0 {
			alerts = append(alerts, Alert{Transaction: tx, Reasons: reasons})
		}
	}

	return alerts, nil
}
