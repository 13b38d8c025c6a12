package transaction

import (
	"time"

	transactionDatamodel "github.com/jdelarosa/finanzas-api/internal/core/datamodel/transaction"
)

const (
	TypeExpense = "expense"
	TypeIncome  = "income"
)

// Transaction is a single signed monetary record. Amount carries the
// direction: positive for income, negative for expense. The type field is
// redundant with the sign and is NOT reconciled against it; a mismatch is
// tolerated and only ever surfaces as a display anomaly.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
}

func (t *Transaction) IsIncome() bool {
	return t.Amount > 0
}

func ToDataModel(t *Transaction) *transactionDatamodel.Transaction {
	return &transactionDatamodel.Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        t.Type,
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
		Timestamp:   t.Timestamp,
	}
}

func FromDataModel(t *transactionDatamodel.Transaction) *Transaction {
	return &Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		Type:        t.Type,
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
		Timestamp:   t.Timestamp,
	}
}

func FromDataModelSlice(records []*transactionDatamodel.Transaction) []*Transaction {
	result := make([]*Transaction, len(records))
	for i, t := range records {
		result[i] = FromDataModel(t)
	}
	return result
}

// MonthBounds returns the inclusive range covering the calendar month that
// contains ref: [first_day 00:00:00, last_day 23:59:59] in ref's location.
func MonthBounds(ref time.Time) (time.Time, time.Time) {
	year, month, _ := ref.Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, ref.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
