package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/pkg/redis"
	"FinanceTracker/pkg/utils"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")
	os.Exit(m.Run())
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestService(t *testing.T, cache redis.IRedis) *transactionService {
	t.Helper()

	svc := NewTransactionService(testLogger(), transactionRepository.NewMemory(testLogger()), cache, time.Minute, utils.New())
	s, ok := svc.(*transactionService)
	require.True(t, ok)

	clock := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func str(s string) *string {
	return &s
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func mustCreate(t *testing.T, s ITransactionService, userID string, req transaction.TransactionRequest) string {
	t.Helper()

	tx, err := s.CreateTransaction(context.Background(), userID, req)
	require.NoError(t, err)
	return tx.ID
}

// seedExample stores the salary/food pair for user-a.
func seedExample(t *testing.T, s ITransactionService) (string, string) {
	t.Helper()

	salary := mustCreate(t, s, "user-a", transaction.TransactionRequest{
		Type:     "income",
		Category: "salary",
		Amount:   amount("1000.00"),
		Date:     "2024-01-05",
	})
	food := mustCreate(t, s, "user-a", transaction.TransactionRequest{
		Type:        "expense",
		Category:    "food",
		Amount:      amount("250.50"),
		Description: str("Groceries"),
		Date:        "2024-01-06",
	})
	return salary, food
}
