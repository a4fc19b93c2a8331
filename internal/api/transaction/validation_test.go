package transaction

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidations(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterValidations(v))

	amount := decimal.RequireFromString("10.00")
	valid := TransactionRequest{Type: "income", Category: "salary", Amount: &amount, Date: "2024-01-05"}
	assert.NoError(t, v.Struct(valid))

	defaults := TransactionRequest{Amount: &amount, Date: "2024-01-05"}
	assert.NoError(t, v.Struct(defaults))

	badType := valid
	badType.Type = "refund"
	assert.Error(t, v.Struct(badType))

	badCategory := valid
	badCategory.Category = "Food"
	assert.Error(t, v.Struct(badCategory))

	badDate := valid
	badDate.Date = "2024-1-5"
	assert.Error(t, v.Struct(badDate))

	category := "travel"
	assert.Error(t, v.Struct(PatchTransactionRequest{Category: &category}))
	assert.NoError(t, v.Struct(PatchTransactionRequest{}))
}
