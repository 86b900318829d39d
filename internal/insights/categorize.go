package insights

import (
	"strings"

	"github.com/finix-labs/insights/internal/domain"
)

// categoryKeywords maps each category to the merchant substrings that select
// it. Order matters: the first category with a matching keyword wins, so this
// is a slice, not a map. Built once at init and never mutated.
var categoryKeywords = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryFood, []string{"zomato", "swiggy", "dominos", "starbucks", "cafe", "restaurant", "grocery"}},
	{domain.CategoryShopping, []string{"amazon", "flipkart", "myntra", "mall", "store"}},
	{domain.CategoryTravel, []string{"uber", "ola", "irctc", "makemytrip", "airlines", "redbus"}},
	{domain.CategoryUtilities, []string{"electricity", "water", "broadband", "recharge", "airtel", "jio"}},
	{domain.CategoryEntertainment, []string{"netflix", "spotify", "bookmyshow", "hotstar", "prime"}},
	{domain.CategoryBills, []string{"rent", "insurance", "emi", "credit card"}},
	{domain.CategoryBanking, []string{"atm", "neft", "imps", "fd ", "interest"}},
}

// Categorize maps a merchant label and transaction type to a category.
// Matching is case-insensitive on the merchant string and resolves ties by
// the fixed priority order of categoryKeywords, so the result is fully
// deterministic. It always returns one of the eight category labels.
//
// The deposit/withdrawal/transfer fallback cannot fire on data produced by
// this system's own generator, which only emits "debit" and "credit"; the
// branch is kept to match the upstream contract for externally supplied
// records.
func Categorize(merchant, txnType string) domain.Category {
	m := strings.ToLower(merchant)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(m, kw) {
				return entry.category
			}
		}
	}

	switch strings.ToLower(txnType) {
	case "deposit", "withdrawal", "transfer":
		return domain.CategoryBanking
	}

	return domain.CategoryOther
}

// CategorizeAll returns a copy of txs with Category assigned on every record.
// This is the required pre-pass before any other analytics component runs;
// the input slice is not mutated.
func CategorizeAll(txs []domain.Transaction) []domain.Transaction {
	out := make([]domain.Transaction, len(txs))
	for i, tx := range txs {
		tx.Category = Categorize(tx.Merchant, string(tx.Type))
		out[i] = tx
	}
	return out
}
