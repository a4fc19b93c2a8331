package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"FinanceTracker/pkg/response"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req transaction.TransactionRequest) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.HasOwner() {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("Client tried to set transaction owner")
		return entity.Transaction{}, transaction.ErrOwnerNotWritable
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	now := s.now()
	id, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return entity.Transaction{}, err
	}

	tx := entity.Transaction{
		ID:        id,
		UserID:    userID,
		Type:      transaction.TypeExpense,
		Category:  transaction.CategoryOther,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyRequest(&tx, req); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}

	if err := repo.Transactions.CreateTransaction(ctx, tx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, transaction.ErrCreateTransaction
	}

	s.invalidateSummaries(ctx, userID)

	return tx, nil
}

func (s *transactionService) GetTransaction(ctx context.Context, userID string, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	tx, err := repo.Transactions.GetTransactionByID(ctx, id, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get transaction by ID")
		return entity.Transaction{}, err
	}

	return tx, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID string, opts transaction.FilterOptions) ([]entity.Transaction, error) {
	return s.query(ctx, userID, opts, true)
}

func (s *transactionService) ReplaceTransaction(ctx context.Context, userID string, id string, req transaction.TransactionRequest) (entity.Transaction, error) {
	if req.HasOwner() {
		return entity.Transaction{}, transaction.ErrOwnerNotWritable
	}

	return s.update(ctx, userID, id, func(tx *entity.Transaction) error {
		return applyRequest(tx, req)
	})
}

func (s *transactionService) PatchTransaction(ctx context.Context, userID string, id string, req transaction.PatchTransactionRequest) (entity.Transaction, error) {
	if req.HasOwner() {
		return entity.Transaction{}, transaction.ErrOwnerNotWritable
	}

	return s.update(ctx, userID, id, func(tx *entity.Transaction) error {
		return applyPatch(tx, req)
	})
}

// update loads the caller's record, applies change and writes it back inside
// one store transaction.
func (s *transactionService) update(ctx context.Context, userID string, id string, change func(tx *entity.Transaction) error) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if err := repo.Rollback(); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to rollback transaction update")
		}
	}()

	tx, err := repo.Transactions.GetTransactionByID(ctx, id, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Warn("Failed to get existing transaction")
		return entity.Transaction{}, err
	}

	if err := change(&tx); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Invalid transaction data")
		return entity.Transaction{}, err
	}
	tx.UpdatedAt = s.now()

	if err := repo.Transactions.UpdateTransaction(ctx, tx); err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return entity.Transaction{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to update transaction")
		return entity.Transaction{}, transaction.ErrUpdateTransaction
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction update")
		return entity.Transaction{}, transaction.ErrUpdateTransaction
	}
	committed = true

	s.invalidateSummaries(ctx, userID)

	return tx, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID string, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Transactions.DeleteTransaction(ctx, id, userID); err != nil {
		if errors.Is(err, transaction.ErrTransactionNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to delete transaction")
		return transaction.ErrDeleteTransaction
	}

	s.invalidateSummaries(ctx, userID)

	return nil
}

// query is the single read path for list, summary and export: the owner
// scope is added by the store, the filter comes from opts.
func (s *transactionService) query(ctx context.Context, userID string, opts transaction.FilterOptions, ordered bool) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return nil, err
	}

	txs, err := repo.Transactions.QueryTransactions(ctx, userID, opts.Predicate(), ordered)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"filter":     opts.Key(),
			"error":      err.Error(),
		}).Error("Failed to query transactions")
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, transaction.ErrQueryTransactions
	}

	return txs, nil
}

// applyRequest writes a create or replace body onto tx. Optional fields
// left out of the body keep whatever tx already holds.
func applyRequest(tx *entity.Transaction, req transaction.TransactionRequest) error {
	if req.Type != "" {
		tx.Type = transaction.Type(req.Type)
	}
	if req.Category != "" {
		tx.Category = transaction.Category(req.Category)
	}

	if req.Amount == nil {
		return response.Wrap(transaction.ErrInvalidAmount, "amount is required")
	}
	tx.Amount = *req.Amount

	if req.Description != nil {
		tx.Description = *req.Description
	}

	date, err := transaction.ParseDate(req.Date)
	if err != nil {
		return response.Wrap(transaction.ErrInvalidDate, "date="+req.Date)
	}
	tx.Date = date

	return tx.Validate()
}

func applyPatch(tx *entity.Transaction, req transaction.PatchTransactionRequest) error {
	if req.Type != nil {
		tx.Type = transaction.Type(*req.Type)
	}
	if req.Category != nil {
		tx.Category = transaction.Category(*req.Category)
	}
	if req.Amount != nil {
		tx.Amount = *req.Amount
	}
	if req.Description != nil {
		tx.Description = *req.Description
	}
	if req.Date != nil {
		date, err := transaction.ParseDate(*req.Date)
		if err != nil {
			return response.Wrap(transaction.ErrInvalidDate, "date="+*req.Date)
		}
		tx.Date = date
	}

	return tx.Validate()
}
