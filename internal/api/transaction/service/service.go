package transactionService

import (
	"ExpenseTracker/internal/api/transaction"
	transactionRepository "ExpenseTracker/internal/api/transaction/repository"
	"ExpenseTracker/internal/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITransactionService interface {
	CreateTransaction(ctx context.Context, userID int64, req transaction.TransactionRequest) (int64, error)
	CreateTransactions(ctx context.Context, userID int64, reqs []transaction.TransactionRequest) ([]int64, error)
	ListTransactions(ctx context.Context, userID int64, query transaction.ListTransactionsQuery) (transaction.ListTransactionsResponse, error)
	GetTransactionByID(ctx context.Context, userID, id int64) (entity.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id int64, req transaction.TransactionRequest) error
	DeleteTransaction(ctx context.Context, userID, id int64) error
	GetSummary(ctx context.Context, userID int64) (entity.Summary, error)
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
}

func NewTransactionService(log *logrus.Logger, tr transactionRepository.Repository) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
	}
}

// toEntity expects a request that already passed validation.
func toEntity(userID int64, req transaction.TransactionRequest) entity.Transaction {
	date := req.Date
	if normalized, ok := entity.NormalizeDate(req.Date); ok {
		date = normalized
	}

	var amount float64
	if req.Amount != nil {
		amount = *req.Amount
	}

	return entity.Transaction{
		UserID:      userID,
		Type:        req.Type,
		Category:    req.Category,
		Amount:      amount,
		Date:        date,
		Description: req.Description,
	}
}
