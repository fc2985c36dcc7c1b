package transactionService

import (
	"ExpenseTracker/internal/api/transaction"
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *transactionService) CreateTransaction(ctx context.Context, userID int64, req transaction.TransactionRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return 0, err
	}

	id, err := repo.Transactions.Create(ctx, toEntity(userID, req))
	if err != nil {
		return 0, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"user_id":        userID,
		"transaction_id": id,
	}).Info("Transaction created")

	return id, nil
}

// CreateTransactions inserts every element in order inside one database
// transaction. Either all rows are committed or none are.
func (s *transactionService) CreateTransactions(ctx context.Context, userID int64, reqs []transaction.TransactionRequest) ([]int64, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if len(reqs) == 0 {
		return nil, transaction.ErrEmptyBatch
	}

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to begin batch transaction")
		return nil, err
	}

	ids := make([]int64, 0, len(reqs))
	for i, req := range reqs {
		id, err := repo.Transactions.Create(ctx, toEntity(userID, req))
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"index":      i,
				"error":      err.Error(),
			}).Warn("Batch element rejected, rolling back")

			if rbErr := repo.Rollback(); rbErr != nil {
				s.log.WithFields(logrus.Fields{
					"request_id": requestID,
					"error":      rbErr.Error(),
				}).Error("Failed to roll back batch transaction")
			}
			return nil, err
		}
		ids = append(ids, id)
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit batch transaction")
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    userID,
		"count":      len(ids),
	}).Info("Transaction batch created")

	return ids, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID int64, query transaction.ListTransactionsQuery) (transaction.ListTransactionsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return transaction.ListTransactionsResponse{}, err
	}

	page, limit := query.Page, query.Limit
	if page < 1 {
		page = transaction.DefaultPage
	}
	if limit < 1 {
		limit = transaction.DefaultLimit
	}
	if limit > transaction.MaxLimit {
		limit = transaction.MaxLimit
	}
	if page > transaction.MaxPage {
		return transaction.ListTransactionsResponse{}, transaction.ErrInvalidPage
	}

	filter := entity.TransactionFilter{
		UserID:    userID,
		Type:      query.Type,
		Category:  query.Category,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	transactions, err := repo.Transactions.List(ctx, filter)
	if err != nil {
		return transaction.ListTransactionsResponse{}, err
	}

	total, err := repo.Transactions.Count(ctx, filter)
	if err != nil {
		return transaction.ListTransactionsResponse{}, err
	}

	return transaction.ListTransactionsResponse{
		Transactions:      transactions,
		CurrentPage:       page,
		TotalPages:        int((total + int64(limit) - 1) / int64(limit)),
		TotalTransactions: total,
	}, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, userID, id int64) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	return repo.Transactions.GetByID(ctx, userID, id)
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, id int64, req transaction.TransactionRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	updated := toEntity(userID, req)
	updated.ID = id

	if err := repo.Transactions.Update(ctx, updated); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"transaction_id": id,
	}).Info("Transaction updated")

	return nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return err
	}

	if err := repo.Transactions.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"transaction_id": id,
	}).Info("Transaction deleted")

	return nil
}
