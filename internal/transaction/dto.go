package transaction

import (
	"time"

	"github.com/jdelarosa/finanzas-api/internal"
)

// CreateTransactionDTO is the request payload for recording a transaction.
// The sign of amount is taken as given; it is not validated against type
// (see the domain comment on Transaction).
type CreateTransactionDTO struct {
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

func (dto CreateTransactionDTO) Validate() error {
	if dto.Type != TypeExpense && dto.Type != TypeIncome {
		return internal.NewValidationError("type must be either 'expense' or 'income'", internal.ErrCodeInvalidType)
	}
	if dto.Amount == 0 {
		return internal.NewValidationError("amount cannot be zero", internal.ErrCodeInvalidAmount)
	}
	if dto.Category == "" {
		return internal.NewValidationError("category is required", internal.ErrCodeInvalidCategory)
	}
	if dto.Description == "" {
		return internal.NewValidationError("description is required", internal.ErrCodeInvalidDescription)
	}
	if dto.Date.IsZero() {
		return internal.NewValidationError("date is required", internal.ErrCodeInvalidDate)
	}
	return nil
}

// UpdateTransactionDTO is a partial update; nil fields are left untouched.
// Any successful update refreshes the record's timestamp.
type UpdateTransactionDTO struct {
	Type        *string    `json:"type,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	Category    *string    `json:"category,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

func (dto UpdateTransactionDTO) Validate() error {
	if dto.Type != nil && *dto.Type != TypeExpense && *dto.Type != TypeIncome {
		return internal.NewValidationError("type must be either 'expense' or 'income'", internal.ErrCodeInvalidType)
	}
	if dto.Amount != nil && *dto.Amount == 0 {
		return internal.NewValidationError("amount cannot be zero", internal.ErrCodeInvalidAmount)
	}
	if dto.Category != nil && *dto.Category == "" {
		return internal.NewValidationError("category cannot be empty", internal.ErrCodeInvalidCategory)
	}
	if dto.Description != nil && *dto.Description == "" {
		return internal.NewValidationError("description cannot be empty", internal.ErrCodeInvalidDescription)
	}
	if dto.Date != nil && dto.Date.IsZero() {
		return internal.NewValidationError("date cannot be zero", internal.ErrCodeInvalidDate)
	}
	return nil
}

type TransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

// Domain errors, shared with the HTTP layer so responses carry the
// right status and error code.
var (
	ErrTransactionNotFound = internal.ErrTransactionNotFound
	ErrUnauthorizedAccess  = internal.ErrUnauthorizedAccess
)
