package insights

import (
	"errors"
	"fmt"

	"github.com/finix-labs/insights/internal/domain"
)

// ErrUncategorized reports that a transaction reached an analytics component
// before the categorizer pre-pass ran. Downstream components fail fast on it
// rather than silently defaulting the category.
var ErrUncategorized = errors.New("transaction missing category")

// requireCategorized validates the pre-pass precondition for a whole set.
func requireCategorized(txs []domain.Transaction) error {
	for i, tx := range txs {
		if !tx.Categorized() {
			return fmt.Errorf("%w: index %d, merchant %q", ErrUncategorized, i, tx.Merchant)
		}
	}
	return nil
}
