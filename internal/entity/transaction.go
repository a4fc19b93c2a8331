package entity

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/pkg/predicate"
	"time"

	"github.com/shopspring/decimal"
)

// MaxAmount is the largest amount a transaction can hold (10 digits, 2 decimal places).
var MaxAmount = decimal.RequireFromString("99999999.99")

type Transaction struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user"`
	Type        transaction.Type     `json:"type"`
	Category    transaction.Category `json:"category"`
	Amount      decimal.Decimal      `json:"amount"`
	Description string               `json:"description"`
	Date        time.Time            `json:"date"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func (t *Transaction) Validate() error {
	if !t.Type.Valid() {
		return transaction.ErrInvalidTransactionType
	}

	if !t.Category.Valid() {
		return transaction.ErrInvalidCategory
	}

	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}

	if t.Date.IsZero() {
		return transaction.ErrInvalidDate
	}

	return nil
}

// ValidateAmount accepts non-negative amounts with at most two decimal places.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return transaction.ErrInvalidAmount
	}
	if !amount.Equal(amount.Round(2)) {
		return transaction.ErrInvalidAmount
	}
	if amount.GreaterThan(MaxAmount) {
		return transaction.ErrInvalidAmount
	}
	return nil
}

// FieldValue exposes the record to in-memory predicate evaluation.
func (t Transaction) FieldValue(field predicate.Field) (interface{}, bool) {
	switch field {
	case transaction.FieldOwner:
		return t.UserID, true
	case transaction.FieldType:
		return string(t.Type), true
	case transaction.FieldCategory:
		return string(t.Category), true
	case transaction.FieldDescription:
		return t.Description, true
	case transaction.FieldDate:
		return t.Date, true
	case transaction.FieldAmount:
		return t.Amount, true
	default:
		return nil, false
	}
}
