package insights

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/finix-labs/insights/internal/domain"
)

func TestBuildFingerprint_RequiresCategories(t *testing.T) {
	txs := []domain.Transaction{mkTxn(domain.TxnDebit, 100, "Zomato", "2025-06-01")}

	_, err := BuildFingerprint(txs)
	if !errors.Is(err, ErrUncategorized) {
		t.Fatalf("BuildFingerprint on uncategorized input: err = %v, want ErrUncategorized", err)
	}
}

// Worked example: credit 1000, debit 200 -> savings rate 80.0.
func TestBuildFingerprint_SavingsRate(t *testing.T) {
	txs := CategorizeAll([]domain.Transaction{
		mkTxn(domain.TxnCredit, 1000, "Salary", "2025-06-01"),
		mkTxn(domain.TxnDebit, 200, "Zomato", "2025-06-02"),
	})

	fp, err := BuildFingerprint(txs)
	if err != nil {
		t.Fatalf("BuildFingerprint: %v", err)
	}
	if fp.SavingsRate != 80.0 {
		t.Errorf("SavingsRate = %v, want 80.0", fp.SavingsRate)
	}
}

func TestBuildFingerprint_SavingsRateEdges(t *testing.T) {
	tests := []struct {
		name string
		txs  []domain.Transaction
		want float64
	}{
		{
			name: "no credit yields zero",
			txs: []domain.Transaction{
				mkTxn(domain.TxnDebit, 500, "Zomato", "2025-06-01"),
			},
			want: 0,
		},
		{
			name: "all credit yields 100",
			txs: []domain.Transaction{
				mkTxn(domain.TxnCredit, 1000, "Salary", "2025-06-01"),
			},
			want: 100,
		},
		{
			name: "overspending goes negative, not clamped",
			txs: []domain.Transaction{
				mkTxn(domain.TxnCredit, 100, "Salary", "2025-06-01"),
				mkTxn(domain.TxnDebit, 200, "Zomato", "2025-06-02"),
			},
			want: -100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp, err := BuildFingerprint(CategorizeAll(tt.txs))
			if err != nil {
				t.Fatalf("BuildFingerprint: %v", err)
			}
			if fp.SavingsRate != tt.want {
				t.Errorf("SavingsRate = %v, want %v", fp.SavingsRate, tt.want)
			}
		})
	}
}

// The spending distribution must sum to ~100% whenever there is any debit.
func TestBuildFingerprint_DistributionSumsTo100(t *testing.T) {
	txs := CategorizeAll([]domain.Transaction{
		mkTxn(domain.TxnDebit, 333, "Zomato", "2025-06-01"),
		mkTxn(domain.TxnDebit, 333, "Amazon", "2025-06-01"),
		mkTxn(domain.TxnDebit, 333, "Uber", "2025-06-02"),
		mkTxn(domain.TxnDebit, 1, "Netflix", "2025-06-03"),
		mkTxn(domain.TxnCredit, 5000, "Salary", "2025-06-03"),
	})

	fp, err := BuildFingerprint(txs)
	if err != nil {
		t.Fatalf("BuildFingerprint: %v", err)
	}

	var sum float64
	for _, pct := range fp.SpendingDistribution {
		sum += pct
	}
	if math.Abs(sum-100) > 0.5 {
		t.Errorf("distribution sums to %v, want ~100", sum)
	}
}

func TestBuildFingerprint_NoDebits(t *testing.T) {
	txs := CategorizeAll([]domain.Transaction{
		mkTxn(domain.TxnCredit, 1000, "Salary", "2025-06-01"),
	})

	fp, err := BuildFingerprint(txs)
	if err != nil {
		t.Fatalf("BuildFingerprint: %v", err)
	}
	if len(fp.SpendingDistribution) != 0 {
		t.Errorf("SpendingDistribution = %v, want empty with no debits", fp.SpendingDistribution)
	}
	if fp.AverageTransaction != 0 {
		t.Errorf("AverageTransaction = %v, want 0 with no debits", fp.AverageTransaction)
	}
}

func TestBuildFingerprint_FrequencyAndTrajectory(t *testing.T) {
	txs := CategorizeAll([]domain.Transaction{
		mkTxn(domain.TxnDebit, 100, "Zomato", "2025-06-01"),
		mkTxn(domain.TxnCredit, 50, "Zomato Refund", "2025-06-02"),
		mkTxn(domain.TxnDebit, 300, "Swiggy", "2025-06-03"),
	})

	fp, err := BuildFingerprint(txs)
	if err != nil {
		t.Fatalf("BuildFingerprint: %v", err)
	}

	// Frequency counts both debits and credits.
	if got := fp.FrequencyPerCategory[domain.CategoryFood]; got != 3 {
		t.Errorf("FrequencyPerCategory[Food] = %d, want 3", got)
	}

	// Trajectory holds debits only, in input order.
	want := []TrajectoryPoint{
		{Date: "2025-06-01", Amount: 100},
		{Date: "2025-06-03", Amount: 300},
	}
	if diff := cmp.Diff(want, fp.BehaviorTrajectory[domain.CategoryFood]); diff != "" {
		t.Errorf("BehaviorTrajectory[Food] mismatch (-want +got):\n%s", diff)
	}

	// Average over the two debits: (100+300)/2.
	if fp.AverageTransaction != 200 {
		t.Errorf("AverageTransaction = %v, want 200", fp.AverageTransaction)
	}
}
