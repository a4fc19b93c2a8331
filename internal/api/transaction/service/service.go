package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/redis"
	"FinanceTracker/pkg/utils"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, userID string, req transaction.TransactionRequest) (entity.Transaction, error)
	GetTransaction(ctx context.Context, userID string, id string) (entity.Transaction, error)
	ListTransactions(ctx context.Context, userID string, opts transaction.FilterOptions) ([]entity.Transaction, error)
	ReplaceTransaction(ctx context.Context, userID string, id string, req transaction.TransactionRequest) (entity.Transaction, error)
	PatchTransaction(ctx context.Context, userID string, id string, req transaction.PatchTransactionRequest) (entity.Transaction, error)
	DeleteTransaction(ctx context.Context, userID string, id string) error
	GetSummary(ctx context.Context, userID string, opts transaction.FilterOptions) (Summary, error)
	ExportCSV(ctx context.Context, userID string, opts transaction.FilterOptions, w io.Writer) error
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	summaryCache          *summaryCache
	utils                 utils.IUtils
	now                   func() time.Time
}

// NewTransactionService wires the service. cache may be nil, in which case
// every summary is computed from the store.
func NewTransactionService(
	log *logrus.Logger,
	tr transactionRepository.Repository,
	cache redis.IRedis,
	cacheTTL time.Duration,
	utils utils.IUtils,
) ITransactionService {
	var sc *summaryCache
	if cache != nil {
		sc = newSummaryCache(cache, cacheTTL, tr.Epoch())
	}

	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		summaryCache:          sc,
		utils:                 utils,
		now:                   time.Now,
	}
}
