package transactionRepository

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/predicate"
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type TransactionDB struct {
	ID          sql.NullString      `db:"id"`
	UserID      sql.NullString      `db:"user_id"`
	Type        sql.NullString      `db:"type"`
	Category    sql.NullString      `db:"category"`
	Amount      decimal.NullDecimal `db:"amount"`
	Description sql.NullString      `db:"description"`
	Date        sql.NullTime        `db:"date"`
	CreatedAt   time.Time           `db:"created_at"`
	UpdatedAt   time.Time           `db:"updated_at"`
}

func (r *transactionRepository) CreateTransaction(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          tx.ID,
		"user_id":     tx.UserID,
		"type":        string(tx.Type),
		"category":    string(tx.Category),
		"amount":      tx.Amount,
		"description": tx.Description,
		"date":        tx.Date,
		"created_at":  tx.CreatedAt,
		"updated_at":  tx.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return err
	}
	query = r.q.Rebind(query)

	if _, err = r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return err
	}

	return nil
}

func (r *transactionRepository) GetTransactionByID(c context.Context, id string, userID string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)
	var row TransactionDB

	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetTransactionByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(c, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return r.makeTransaction(row), nil
}

// QueryTransactions compiles the owner-scoped predicate into the WHERE clause,
// so filtering happens in postgres rather than in memory.
func (r *transactionRepository) QueryTransactions(c context.Context, userID string, p predicate.Predicate, ordered bool) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)

	scoped, err := transaction.OwnerScoped(userID, p)
	if err != nil {
		return nil, err
	}

	where, args, err := predicate.Compile(scoped, transactionColumns)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("QueryTransactions predicate compile err")
		return nil, err
	}

	query := querySelectTransactions + " WHERE " + where
	if ordered {
		query += queryOrderTransactions
	}
	query = r.q.Rebind(query)

	var rows []TransactionDB
	if err := r.q.SelectContext(c, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("QueryTransactions execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, r.makeTransaction(row))
	}

	return result, nil
}

func (r *transactionRepository) UpdateTransaction(c context.Context, tx entity.Transaction) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":          tx.ID,
		"user_id":     tx.UserID,
		"type":        string(tx.Type),
		"category":    string(tx.Category),
		"amount":      tx.Amount,
		"description": tx.Description,
		"date":        tx.Date,
		"updated_at":  tx.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")
		return err
	}

	return r.expectOneRow(requestID, result, "UpdateTransaction")
}

func (r *transactionRepository) DeleteTransaction(c context.Context, id string, userID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":      id,
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteTransaction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")
		return err
	}

	return r.expectOneRow(requestID, result, "DeleteTransaction")
}

func (r *transactionRepository) expectOneRow(requestID string, result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(op + " rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn(op + " no rows affected")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) makeTransaction(row TransactionDB) entity.Transaction {
	date := row.Date.Time
	if row.Date.Valid {
		date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	}

	return entity.Transaction{
		ID:          row.ID.String,
		UserID:      row.UserID.String,
		Type:        transaction.Type(row.Type.String),
		Category:    transaction.Category(row.Category.String),
		Amount:      row.Amount.Decimal,
		Description: row.Description.String,
		Date:        date,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
