package transactionRepository

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/predicate"
	"context"
	"sort"
	"sync"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// NewMemory returns a store that keeps transactions in process memory and
// evaluates predicates record by record. It backs STORE_DRIVER=memory and tests.
func NewMemory(log *logrus.Logger) Repository {
	return &memoryRepository{
		epoch: ulid.Make().String(),
		store: &memoryStore{
			records: make(map[string]entity.Transaction),
			log:     log,
		},
	}
}

type memoryRepository struct {
	epoch string
	store *memoryStore
}

func (r *memoryRepository) Epoch() string {
	return r.epoch
}

func (r *memoryRepository) NewClient(bool) (Client, error) {
	noop := func() error { return nil }
	return Client{
		Transactions: r.store,
		Commit:       noop,
		Rollback:     noop,
	}, nil
}

type memoryStore struct {
	mu      sync.RWMutex
	records map[string]entity.Transaction
	log     *logrus.Logger
}

func (m *memoryStore) CreateTransaction(c context.Context, tx entity.Transaction) error {
	if err := c.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[tx.ID] = tx
	return nil
}

func (m *memoryStore) GetTransactionByID(c context.Context, id string, userID string) (entity.Transaction, error) {
	if err := c.Err(); err != nil {
		return entity.Transaction{}, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	tx, ok := m.records[id]
	if !ok || tx.UserID != userID {
		m.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(c),
			"id":         id,
		}).Warn("GetTransactionByID no rows found")
		return entity.Transaction{}, transaction.ErrTransactionNotFound
	}
	return tx, nil
}

func (m *memoryStore) QueryTransactions(c context.Context, userID string, p predicate.Predicate, ordered bool) ([]entity.Transaction, error) {
	if err := c.Err(); err != nil {
		return nil, err
	}

	scoped, err := transaction.OwnerScoped(userID, p)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]entity.Transaction, 0)
	for _, tx := range m.records {
		ok, err := predicate.Evaluate(scoped, tx)
		if err != nil {
			m.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(c),
				"error":      err.Error(),
			}).Error("QueryTransactions predicate evaluation err")
			return nil, err
		}
		if ok {
			result = append(result, tx)
		}
	}

	if ordered {
		SortDefault(result)
	}

	return result, nil
}

func (m *memoryStore) UpdateTransaction(c context.Context, tx entity.Transaction) error {
	if err := c.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[tx.ID]
	if !ok || existing.UserID != tx.UserID {
		return transaction.ErrTransactionNotFound
	}

	tx.CreatedAt = existing.CreatedAt
	m.records[tx.ID] = tx
	return nil
}

func (m *memoryStore) DeleteTransaction(c context.Context, id string, userID string) error {
	if err := c.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.records[id]
	if !ok || existing.UserID != userID {
		return transaction.ErrTransactionNotFound
	}

	delete(m.records, id)
	return nil
}

// SortDefault orders by date, newest first, then by creation time, newest first.
// Ids break exact ties so the order is deterministic.
func SortDefault(txs []entity.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
}
