package transactionHandler

import (
	transactionService "ExpenseTracker/internal/api/transaction/service"
	"ExpenseTracker/internal/middleware"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validator.Validate
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
	requestTimeout     time.Duration
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
		requestTimeout:     10 * time.Second,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transactions := srv.Group("/transactions", h.middleware.NewTokenMiddleware)

	transactions.Post("/", h.CreateTransaction)
	transactions.Post("/batch", h.CreateTransactions)
	transactions.Get("/", h.ListTransactions)
	transactions.Get("/:id", h.GetTransactionByID)
	transactions.Put("/:id", h.UpdateTransaction)
	transactions.Delete("/:id", h.DeleteTransaction)

	srv.Get("/summary", h.middleware.NewTokenMiddleware, h.GetSummary)
}
