package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	assert.Equal(t, "Date,Type,Category,Amount,Description\n", buf.String())
}

func TestWriteCSVRoundTrip(t *testing.T) {
	txs := []entity.Transaction{
		{
			Type:        transaction.TypeExpense,
			Category:    transaction.CategoryFood,
			Amount:      decimal.RequireFromString("250.5"),
			Description: `Lunch, "team" day`,
			Date:        time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			Type:        transaction.TypeIncome,
			Category:    transaction.CategorySalary,
			Amount:      decimal.RequireFromString("1000"),
			Description: "line one\nline two",
			Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			Type:     transaction.TypeExpense,
			Category: transaction.CategoryEntertainment,
			Amount:   decimal.RequireFromString("0.07"),
			Date:     time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txs))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Date", "Type", "Category", "Amount", "Description"},
		{"2024-01-06", "Expense", "Food", "250.50", `Lunch, "team" day`},
		{"2024-01-05", "Income", "Salary", "1000.00", "line one\nline two"},
		{"2023-12-31", "Expense", "Entertainment", "0.07", ""},
	}, rows)
}

func TestExportCSVUsesFiltersAndOrder(t *testing.T) {
	s := newTestService(t, nil)
	seedExample(t, s)
	mustCreate(t, s, "user-b", transaction.TransactionRequest{Category: "food", Amount: amount("3.00"), Date: "2024-01-06"})

	var all bytes.Buffer
	require.NoError(t, s.ExportCSV(context.Background(), "user-a", transaction.FilterOptions{}, &all))

	rows, err := csv.NewReader(&all).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-01-06", rows[1][0])
	assert.Equal(t, "2024-01-05", rows[2][0])

	var food bytes.Buffer
	require.NoError(t, s.ExportCSV(context.Background(), "user-a", transaction.FilterOptions{Category: transaction.CategoryFood}, &food))

	rows, err = csv.NewReader(&food).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2024-01-06", "Expense", "Food", "250.50", "Groceries"}, rows[1])
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"food", "Food"},
		{"income", "Income"},
		{"eBay", "EBay"},
		{"already Mixed", "Already Mixed"},
		{"ñandú", "Ñandú"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, capitalize(tt.in))
		})
	}
}
