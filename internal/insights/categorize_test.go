package insights

import (
	"testing"

	"github.com/finix-labs/insights/internal/domain"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name     string
		merchant string
		txnType  string
		want     domain.Category
	}{
		{"food delivery", "Zomato Order #1234", "debit", domain.CategoryFood},
		{"case insensitive merchant", "AMAZON RETAIL", "debit", domain.CategoryShopping},
		{"ride hailing", "Uber Trip", "debit", domain.CategoryTravel},
		{"streaming", "Netflix Subscription", "debit", domain.CategoryEntertainment},
		{"mobile recharge", "Airtel Recharge", "debit", domain.CategoryUtilities},
		{"rent payment", "Monthly Rent Transfer", "debit", domain.CategoryBills},
		{"atm cash", "ATM Withdrawal HDFC", "debit", domain.CategoryBanking},
		{"salary credit", "Salary", "credit", domain.CategoryOther},
		{"unknown merchant debit", "Corner Kiosk", "debit", domain.CategoryOther},
		{"unknown merchant deposit fallback", "Corner Kiosk", "deposit", domain.CategoryBanking},
		{"unknown merchant withdrawal fallback", "Corner Kiosk", "withdrawal", domain.CategoryBanking},
		{"unknown merchant transfer fallback", "Corner Kiosk", "transfer", domain.CategoryBanking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(tt.merchant, tt.txnType)
			if got != tt.want {
				t.Errorf("Categorize(%q, %q) = %q, want %q", tt.merchant, tt.txnType, got, tt.want)
			}
		})
	}
}

// A merchant matching keywords from two categories must resolve to the
// category listed first in the priority order.
func TestCategorize_KeywordPriority(t *testing.T) {
	tests := []struct {
		merchant string
		want     domain.Category
	}{
		{"amazon uber gift card", domain.CategoryShopping}, // Shopping before Travel
		{"zomato via amazon pay", domain.CategoryFood},     // Food before Shopping
		{"uber one on netflix", domain.CategoryTravel},     // Travel before Entertainment
	}

	for _, tt := range tests {
		got := Categorize(tt.merchant, "debit")
		if got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.merchant, got, tt.want)
		}
	}
}

// Categorize must be deterministic and always return one of the eight labels.
func TestCategorize_TotalAndDeterministic(t *testing.T) {
	valid := make(map[domain.Category]bool)
	for _, c := range domain.Categories() {
		valid[c] = true
	}

	merchants := []string{"Zomato", "amazon", "", "???", "Some Random Shop", "UBER zomato amazon"}
	types := []string{"debit", "credit", "deposit", "withdrawal", "transfer", "unknown", ""}

	for _, m := range merchants {
		for _, ty := range types {
			first := Categorize(m, ty)
			second := Categorize(m, ty)
			if first != second {
				t.Errorf("Categorize(%q, %q) not deterministic: %q vs %q", m, ty, first, second)
			}
			if !valid[first] {
				t.Errorf("Categorize(%q, %q) = %q, not a valid category", m, ty, first)
			}
		}
	}
}

func TestCategorizeAll(t *testing.T) {
	input := []domain.Transaction{
		mkTxn(domain.TxnDebit, 250, "Zomato", "2025-06-01"),
		mkTxn(domain.TxnCredit, 50000, "Salary", "2025-06-01"),
	}

	got := CategorizeAll(input)

	if len(got) != len(input) {
		t.Fatalf("CategorizeAll returned %d records, want %d", len(got), len(input))
	}
	for i, tx := range got {
		if !tx.Categorized() {
			t.Errorf("record %d still uncategorized", i)
		}
	}
	if got[0].Category != domain.CategoryFood {
		t.Errorf("zomato categorized as %q, want %q", got[0].Category, domain.CategoryFood)
	}

	// Input must stay untouched.
	for i, tx := range input {
		if tx.Categorized() {
			t.Errorf("input record %d was mutated", i)
		}
	}
}
