package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// TxnType is the direction of a transaction as reported in the source SMS.
type TxnType string

const (
	TxnDebit  TxnType = "debit"
	TxnCredit TxnType = "credit"
)

// Category classifies the purpose of a transaction. Assigned by the
// categorizer; every analytics component requires it to be set.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryShopping      Category = "Shopping"
	CategoryTravel        Category = "Travel"
	CategoryUtilities     Category = "Utilities"
	CategoryBanking       Category = "Banking"
	CategoryBills         Category = "Bills"
	CategoryEntertainment Category = "Entertainment"
	CategoryOther         Category = "Other"
)

// Categories lists every valid category label.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryShopping,
		CategoryTravel,
		CategoryUtilities,
		CategoryBanking,
		CategoryBills,
		CategoryEntertainment,
		CategoryOther,
	}
}

// DateFormat is the day-granularity date layout used everywhere in the API.
const DateFormat = "2006-01-02"

// Transaction represents one structured bank-SMS transaction record.
// Balance is informational only; the analytics components never read it.
// Category is empty until the categorizer pre-pass has run.
type Transaction struct {
	ID       string    `json:"id"`
	Bank     string    `json:"bank"`
	Type     TxnType   `json:"type"`
	Amount   int64     `json:"amount"`
	Merchant string    `json:"merchant"`
	Date     time.Time `json:"-"`
	Balance  int64     `json:"balance"`
	Category Category  `json:"category,omitempty"`
}

// DateString formats the transaction date at day granularity.
func (t Transaction) DateString() string {
	return t.Date.Format(DateFormat)
}

// MarshalJSON emits the date as a YYYY-MM-DD string alongside the other fields.
func (t Transaction) MarshalJSON() ([]byte, error) {
	type alias Transaction
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{alias(t), t.DateString()})
}

// UnmarshalJSON parses the day-granularity date string.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	aux := struct {
		*alias
		Date string `json:"date"`
	}{alias: (*alias)(t)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Date != "" {
		parsed, err := time.Parse(DateFormat, aux.Date)
		if err != nil {
			return fmt.Errorf("invalid transaction date %q: %w", aux.Date, err)
		}
		t.Date = parsed
	}
	return nil
}

// Categorized reports whether the categorizer pre-pass has run on this record.
func (t Transaction) Categorized() bool {
	return t.Category != ""
}
