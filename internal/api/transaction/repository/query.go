package transactionRepository

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/pkg/predicate"
)

var transactionColumns = predicate.Columns{
	transaction.FieldOwner:       "user_id",
	transaction.FieldType:        "type",
	transaction.FieldCategory:    "category",
	transaction.FieldDescription: "description",
	transaction.FieldDate:        "date",
	transaction.FieldAmount:      "amount",
}

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			type,
			category,
			amount,
			description,
			date,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:type,
			:category,
			:amount,
			:description,
			:date,
			:created_at,
			:updated_at
		)
	`

	querySelectTransactions = `
		SELECT
			id,
			user_id,
			type,
			category,
			amount,
			description,
			date,
			created_at,
			updated_at
		FROM transactions
	`

	queryGetTransactionByID = querySelectTransactions + `
		WHERE id = :id AND user_id = :user_id
	`

	queryOrderTransactions = `
		ORDER BY date DESC, created_at DESC, id DESC
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			type = :type,
			category = :category,
			amount = :amount,
			description = :description,
			date = :date,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id AND user_id = :user_id
	`
)
