package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"encoding/csv"
	"errors"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

var csvHeader = []string{"Date", "Type", "Category", "Amount", "Description"}

// WriteCSV writes one row per transaction, in the order given.
func WriteCSV(w io.Writer, txs []entity.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, tx := range txs {
		row := []string{
			tx.Date.Format(transaction.DateLayout),
			capitalize(string(tx.Type)),
			capitalize(string(tx.Category)),
			tx.Amount.StringFixed(2),
			tx.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func (s *transactionService) ExportCSV(ctx context.Context, userID string, opts transaction.FilterOptions, w io.Writer) error {
	txs, err := s.query(ctx, userID, opts, true)
	if err != nil {
		return err
	}

	if err := WriteCSV(w, txs); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Failed to write CSV export")
		if errors.Is(err, context.Canceled) {
			return err
		}
		return transaction.ErrExportTransactions
	}

	return nil
}
