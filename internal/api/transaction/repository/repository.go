package transactionRepository

import (
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/predicate"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

type Repository interface {
	NewClient(tx bool) (Client, error)
	// Epoch names the lifetime of the stored data. It is empty for durable
	// stores and unique per instance for stores that start empty.
	Epoch() string
}

// TransactionStore is the persistence collaborator of the query engine.
// Every read and write is scoped to the owning user.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx entity.Transaction) error
	GetTransactionByID(ctx context.Context, id string, userID string) (entity.Transaction, error)
	QueryTransactions(ctx context.Context, userID string, p predicate.Predicate, ordered bool) ([]entity.Transaction, error)
	UpdateTransaction(ctx context.Context, tx entity.Transaction) error
	DeleteTransaction(ctx context.Context, id string, userID string) error
}

type Client struct {
	Transactions TransactionStore

	Commit   func() error
	Rollback func() error
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

func (r *repository) Epoch() string {
	return ""
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Transactions: &transactionRepository{q: sqlExecutor, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type transactionRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
