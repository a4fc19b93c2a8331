package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type Summary struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
	Count        int             `json:"count"`
}

// Summarize totals income and expense with exact decimal arithmetic.
// Count covers every transaction, whatever its type.
func Summarize(txs []entity.Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeIncome:
			income = income.Add(tx.Amount)
		case transaction.TypeExpense:
			expense = expense.Add(tx.Amount)
		}
	}

	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
		Count:        len(txs),
	}
}

func (s *transactionService) GetSummary(ctx context.Context, userID string, opts transaction.FilterOptions) (Summary, error) {
	requestID := contextPkg.GetRequestID(ctx)

	// The version is read before the store so a write racing with this
	// request can only leave an entry under a version nobody reads again.
	var (
		version  int64
		cacheErr error
	)
	if s.summaryCache != nil {
		version, cacheErr = s.summaryCache.version(ctx, userID)
		if cacheErr == nil {
			cached, ok, err := s.summaryCache.get(ctx, userID, version, opts)
			if err == nil && ok {
				return cached, nil
			}
			cacheErr = err
		}
		if cacheErr != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      cacheErr.Error(),
			}).Warn("Summary cache read failed, computing from store")
		}
	}

	txs, err := s.query(ctx, userID, opts, false)
	if err != nil {
		return Summary{}, err
	}

	summary := Summarize(txs)

	if s.summaryCache != nil && cacheErr == nil {
		if err := s.summaryCache.set(ctx, userID, version, opts, summary); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Summary cache write failed")
		}
	}

	return summary, nil
}

func (s *transactionService) invalidateSummaries(ctx context.Context, userID string) {
	if s.summaryCache == nil {
		return
	}
	if err := s.summaryCache.invalidate(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to invalidate cached summaries")
	}
}
