// Package generator produces synthetic bank-SMS transaction records. It
// stands in for the real SMS ingestion boundary: records come out already
// structured, without a category, and every call yields a fresh dataset.
package generator

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/finix-labs/insights/internal/domain"
)

// DefaultCount is the dataset size used when the caller does not specify one.
const DefaultCount = 100

// banks is the small enumerated set of source banks.
var banks = []string{"HDFC", "ICICI", "SBI", "AXIS", "KOTAK"}

// debitMerchants covers every category's keyword space plus a few labels that
// match nothing, so "Other" shows up in generated data too.
var debitMerchants = []string{
	"Zomato", "Swiggy", "Dominos Pizza", "Starbucks Cafe",
	"Amazon", "Flipkart", "Myntra Store",
	"Uber", "Ola Cabs", "IRCTC Rail", "MakeMyTrip",
	"Airtel Recharge", "Jio Broadband", "Electricity Board",
	"Netflix", "Spotify", "BookMyShow",
	"House Rent", "LIC Insurance", "Car Loan EMI",
	"ATM Cash", "NEFT Transfer Out",
	"Corner Kiosk", "Local Vendor",
}

var creditMerchants = []string{"Salary", "Freelance Payout", "Cashback", "NEFT Refund"}

const (
	debitMin  = 50
	debitMax  = 8000
	creditMin = 1000
	creditMax = 60000
)

// Generator produces synthetic transaction sets. Each Generator owns its own
// rand source so concurrent generators never contend; a fixed seed makes the
// output reproducible for tests.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded from the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a generator with a deterministic stream.
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Transactions produces count synthetic records with day-granularity dates
// spread over the last 30 days, oldest first. Roughly one record in five is a
// credit. Categories are left unset; the categorizer pre-pass assigns them.
func (g *Generator) Transactions(count int) []domain.Transaction {
	if count <= 0 {
		count = DefaultCount
	}

	today := time.Now().UTC()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	balance := int64(50000 + g.rng.Intn(50000))
	txs := make([]domain.Transaction, 0, count)
	for i := 0; i < count; i++ {
		// Walk forward through the window so input order is chronological.
		dayOffset := 29 - (29*i)/count
		date := today.AddDate(0, 0, -dayOffset)

		tx := domain.Transaction{
			ID:   uuid.NewString(),
			Bank: banks[g.rng.Intn(len(banks))],
			Date: date,
		}

		if g.rng.Intn(5) == 0 {
			tx.Type = domain.TxnCredit
			tx.Merchant = creditMerchants[g.rng.Intn(len(creditMerchants))]
			tx.Amount = int64(creditMin + g.rng.Intn(creditMax-creditMin+1))
			balance += tx.Amount
		} else {
			tx.Type = domain.TxnDebit
			tx.Merchant = debitMerchants[g.rng.Intn(len(debitMerchants))]
			tx.Amount = int64(debitMin + g.rng.Intn(debitMax-debitMin+1))
			balance -= tx.Amount
		}
		tx.Balance = balance

		txs = append(txs, tx)
	}

	return txs
}
