package transaction

import (
	"FinanceTracker/pkg/response"
	"net/http"
)

var (
	ErrTransactionNotFound    = response.NewError(http.StatusNotFound, "transaction not found")
	ErrInvalidTransactionType = response.NewError(http.StatusBadRequest, "invalid transaction type")
	ErrInvalidCategory        = response.NewError(http.StatusBadRequest, "invalid category")
	ErrInvalidAmount          = response.NewError(http.StatusBadRequest, "invalid transaction amount")
	ErrInvalidDate            = response.NewError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange       = response.NewError(http.StatusBadRequest, "start_date must not be after end_date")
	ErrOwnerNotWritable       = response.NewError(http.StatusBadRequest, "transaction owner is set from the authenticated user")
	ErrMissingOwner           = response.NewError(http.StatusInternalServerError, "query without owner")
	ErrCreateTransaction      = response.NewError(http.StatusInternalServerError, "failed to create transaction")
	ErrUpdateTransaction      = response.NewError(http.StatusInternalServerError, "failed to update transaction")
	ErrDeleteTransaction      = response.NewError(http.StatusInternalServerError, "failed to delete transaction")
	ErrQueryTransactions      = response.NewError(http.StatusInternalServerError, "failed to query transactions")
	ErrExportTransactions     = response.NewError(http.StatusInternalServerError, "failed to export transactions")
)
