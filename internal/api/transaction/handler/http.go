package transactionHandler

import (
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transactions := srv.Group("/transactions", h.middleware.NewRateLimiter)

	transactions.Get("", h.middleware.NewTokenMiddleware, h.ListTransactions)
	transactions.Post("", h.middleware.NewTokenMiddleware, h.CreateTransaction)
	transactions.Get("/summary", h.middleware.NewTokenMiddleware, h.GetSummary)
	transactions.Get("/export_csv", h.middleware.NewTokenMiddleware, h.ExportCSV)
	transactions.Get("/:id", h.middleware.NewTokenMiddleware, h.GetTransaction)
	transactions.Put("/:id", h.middleware.NewTokenMiddleware, h.ReplaceTransaction)
	transactions.Patch("/:id", h.middleware.NewTokenMiddleware, h.PatchTransaction)
	transactions.Delete("/:id", h.middleware.NewTokenMiddleware, h.DeleteTransaction)
}
