package transactionRepository

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/predicate"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transactionRowColumns = []string{
	"id", "user_id", "type", "category", "amount", "description", "date", "created_at", "updated_at",
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func setupTransactionRepoTest(t *testing.T) (TransactionStore, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db := sqlx.NewDb(mockDB, "sqlmock")
	t.Cleanup(func() { db.Close() })

	client, err := New(db, testLogger()).NewClient(false)
	require.NoError(t, err)

	return client.Transactions, mock
}

func day(s string) time.Time {
	d, err := transaction.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestQueryTransactions(t *testing.T) {
	created := time.Date(2024, 1, 6, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		userID    string
		p         predicate.Predicate
		ordered   bool
		mockSetup func(mock sqlmock.Sqlmock)
		assert    func(t *testing.T, txs []entity.Transaction, err error)
	}{
		{
			name:    "owner scoped and ordered",
			userID:  "user-a",
			p:       predicate.Eq(transaction.FieldCategory, "food"),
			ordered: true,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(transactionRowColumns).
					AddRow("tx-2", "user-a", "expense", "food", "250.50", "Lunch", day("2024-01-06"), created, created)
				mock.ExpectQuery(`SELECT (.+) FROM transactions\s+WHERE \(user_id = \? AND category = \?\)\s+ORDER BY date DESC, created_at DESC`).
					WithArgs("user-a", "food").
					WillReturnRows(rows)
			},
			assert: func(t *testing.T, txs []entity.Transaction, err error) {
				require.NoError(t, err)
				require.Len(t, txs, 1)
				assert.Equal(t, "tx-2", txs[0].ID)
				assert.Equal(t, "user-a", txs[0].UserID)
				assert.Equal(t, transaction.TypeExpense, txs[0].Type)
				assert.True(t, decimal.RequireFromString("250.50").Equal(txs[0].Amount))
				assert.Equal(t, day("2024-01-06"), txs[0].Date)
			},
		},
		{
			name:    "unordered for aggregation",
			userID:  "user-a",
			p:       predicate.True(),
			ordered: false,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM transactions\s+WHERE user_id = \?\s*$`).
					WithArgs("user-a").
					WillReturnRows(sqlmock.NewRows(transactionRowColumns))
			},
			assert: func(t *testing.T, txs []entity.Transaction, err error) {
				require.NoError(t, err)
				assert.NotNil(t, txs)
				assert.Empty(t, txs)
			},
		},
		{
			name:      "missing owner never reaches the database",
			userID:    "",
			p:         predicate.True(),
			mockSetup: func(mock sqlmock.Sqlmock) {},
			assert: func(t *testing.T, txs []entity.Transaction, err error) {
				assert.ErrorIs(t, err, transaction.ErrMissingOwner)
			},
		},
		{
			name:   "database error",
			userID: "user-a",
			p:      predicate.True(),
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM transactions`).
					WillReturnError(errors.New("connection reset"))
			},
			assert: func(t *testing.T, txs []entity.Transaction, err error) {
				assert.EqualError(t, err, "connection reset")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupTransactionRepoTest(t)
			tt.mockSetup(mock)

			txs, err := repo.QueryTransactions(context.Background(), tt.userID, tt.p, tt.ordered)
			tt.assert(t, txs, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetTransactionByID(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)
	created := time.Now().UTC()

	mock.ExpectQuery(`SELECT (.+) FROM transactions\s+WHERE id = \? AND user_id = \?`).
		WithArgs("tx-1", "user-a").
		WillReturnRows(sqlmock.NewRows(transactionRowColumns).
			AddRow("tx-1", "user-a", "income", "salary", "1000.00", nil, day("2024-01-05"), created, created))

	tx, err := repo.GetTransactionByID(context.Background(), "tx-1", "user-a")
	require.NoError(t, err)
	assert.Equal(t, "", tx.Description)
	assert.Equal(t, transaction.CategorySalary, tx.Category)

	mock.ExpectQuery(`SELECT (.+) FROM transactions\s+WHERE id = \? AND user_id = \?`).
		WithArgs("tx-1", "user-b").
		WillReturnRows(sqlmock.NewRows(transactionRowColumns))

	_, err = repo.GetTransactionByID(context.Background(), "tx-1", "user-b")
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTransaction(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)
	now := time.Now().UTC()

	tx := entity.Transaction{
		ID:        "tx-1",
		UserID:    "user-a",
		Type:      transaction.TypeIncome,
		Category:  transaction.CategorySalary,
		Amount:    decimal.RequireFromString("1000.00"),
		Date:      day("2024-01-05"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	mock.ExpectExec(`INSERT INTO transactions`).
		WithArgs("tx-1", "user-a", "income", "salary", sqlmock.AnyArg(), "", day("2024-01-05"), now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateTransaction(context.Background(), tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAndDeleteAreOwnerScoped(t *testing.T) {
	repo, mock := setupTransactionRepoTest(t)

	tx := entity.Transaction{
		ID:        "tx-1",
		UserID:    "user-b",
		Type:      transaction.TypeExpense,
		Category:  transaction.CategoryFood,
		Amount:    decimal.RequireFromString("1"),
		Date:      day("2024-01-05"),
		UpdatedAt: time.Now(),
	}

	mock.ExpectExec(`UPDATE transactions\s+SET (.+)WHERE id = \? AND user_id = \?`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.UpdateTransaction(context.Background(), tx), transaction.ErrTransactionNotFound)

	mock.ExpectExec(`DELETE FROM transactions\s+WHERE id = \? AND user_id = \?`).
		WithArgs("tx-1", "user-b").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteTransaction(context.Background(), "tx-1", "user-b"), transaction.ErrTransactionNotFound)

	mock.ExpectExec(`DELETE FROM transactions\s+WHERE id = \? AND user_id = \?`).
		WithArgs("tx-1", "user-a").
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.DeleteTransaction(context.Background(), "tx-1", "user-a"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
