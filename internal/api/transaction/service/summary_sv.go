package transactionService

import (
	"ExpenseTracker/internal/entity"
	contextPkg "ExpenseTracker/pkg/context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// GetSummary sums income and then expense for the user. Balance is taken in
// decimal so 0.3 - 0.1 reports 0.2.
func (s *transactionService) GetSummary(ctx context.Context, userID int64) (entity.Summary, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Summary{}, err
	}

	income, err := repo.Transactions.SumByType(ctx, userID, entity.TransactionTypeIncome)
	if err != nil {
		return entity.Summary{}, err
	}

	expense, err := repo.Transactions.SumByType(ctx, userID, entity.TransactionTypeExpense)
	if err != nil {
		return entity.Summary{}, err
	}

	balance := decimal.NewFromFloat(income).Sub(decimal.NewFromFloat(expense))

	return entity.Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      balance.InexactFloat64(),
	}, nil
}
