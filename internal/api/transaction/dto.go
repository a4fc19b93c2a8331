package transaction

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TransactionRequest is the body of create (POST) and full replace (PUT).
// On create, an omitted type, category or description falls back to
// expense, other and "". On replace it keeps the stored value.
type TransactionRequest struct {
	Type        string           `json:"type" validate:"omitempty,transaction_type"`
	Category    string           `json:"category" validate:"omitempty,transaction_category"`
	Amount      *decimal.Decimal `json:"amount" validate:"required"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Date        string           `json:"date" validate:"required,datetime=2006-01-02"`

	User   json.RawMessage `json:"user,omitempty"`
	UserID json.RawMessage `json:"user_id,omitempty"`
}

func (r TransactionRequest) HasOwner() bool {
	return len(r.User) > 0 || len(r.UserID) > 0
}

// PatchTransactionRequest carries only the fields being changed.
type PatchTransactionRequest struct {
	Type        *string          `json:"type" validate:"omitempty,transaction_type"`
	Category    *string          `json:"category" validate:"omitempty,transaction_category"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description" validate:"omitempty,max=1000"`
	Date        *string          `json:"date" validate:"omitempty,datetime=2006-01-02"`

	User   json.RawMessage `json:"user,omitempty"`
	UserID json.RawMessage `json:"user_id,omitempty"`
}

func (r PatchTransactionRequest) HasOwner() bool {
	return len(r.User) > 0 || len(r.UserID) > 0
}

type TransactionResponse struct {
	ID          string `json:"id"`
	User        string `json:"user"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type SummaryResponse struct {
	TotalIncome  string `json:"total_income"`
	TotalExpense string `json:"total_expense"`
	Balance      string `json:"balance"`
	Count        int    `json:"count"`
}
