package transactionService

import (
	"ExpenseTracker/database/sqlite"
	"ExpenseTracker/internal/api/transaction"
	transactionRepository "ExpenseTracker/internal/api/transaction/repository"
	"ExpenseTracker/pkg/log"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

func newTestService(t *testing.T) (ITransactionService, *sqlx.DB, int64) {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	var userID int64
	if err := db.QueryRowx("INSERT INTO users (username, password) VALUES ('alice', 'hash') RETURNING id").Scan(&userID); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	logger := log.NewDiscardLogger()
	return NewTransactionService(logger, transactionRepository.New(db, logger)), db, userID
}

func request(txType string, amount float64, date string) transaction.TransactionRequest {
	return transaction.TransactionRequest{
		Type:     txType,
		Category: "misc",
		Amount:   &amount,
		Date:     date,
	}
}

func TestCreateTransactionsIsAllOrNothing(t *testing.T) {
	svc, db, userID := newTestService(t)
	ctx := context.Background()

	reqs := []transaction.TransactionRequest{
		request("income", 1, "2024-01-01"),
		request("income", 2, "2024-01-02"),
		request("gift", 3, "2024-01-03"),
		request("expense", 4, "2024-01-04"),
		request("expense", 5, "2024-01-05"),
	}

	if _, err := svc.CreateTransactions(ctx, userID, reqs); !errors.Is(err, transaction.ErrInvalidTransactionType) {
		t.Fatalf("Expected ErrInvalidTransactionType, got %v", err)
	}

	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM transactions"); err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Expected zero rows after a failed batch, got %d", n)
	}

	ids, err := svc.CreateTransactions(ctx, userID, reqs[:2])
	if err != nil {
		t.Fatalf("CreateTransactions failed: %v", err)
	}
	if len(ids) != 2 || ids[0] >= ids[1] {
		t.Errorf("Expected two ids in request order, got %v", ids)
	}
}

func TestCreateTransactionsRejectsEmptyBatch(t *testing.T) {
	svc, _, userID := newTestService(t)

	if _, err := svc.CreateTransactions(context.Background(), userID, nil); !errors.Is(err, transaction.ErrEmptyBatch) {
		t.Errorf("Expected ErrEmptyBatch, got %v", err)
	}
}

func TestCreateTransactionNormalizesDate(t *testing.T) {
	svc, _, userID := newTestService(t)
	ctx := context.Background()

	id, err := svc.CreateTransaction(ctx, userID, request("income", 10, "2024-02-10T09:15:00Z"))
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}

	got, err := svc.GetTransactionByID(ctx, userID, id)
	if err != nil {
		t.Fatalf("GetTransactionByID failed: %v", err)
	}
	if got.Date != "2024-02-10" {
		t.Errorf("Expected normalized date 2024-02-10, got %q", got.Date)
	}
}

func TestListTransactionsPages(t *testing.T) {
	svc, _, userID := newTestService(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if _, err := svc.CreateTransaction(ctx, userID, request("expense", float64(i), "2024-01-01")); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	res, err := svc.ListTransactions(ctx, userID, transaction.ListTransactionsQuery{Page: 2, Limit: 2})
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}

	if len(res.Transactions) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(res.Transactions))
	}
	if res.CurrentPage != 2 || res.TotalPages != 3 || res.TotalTransactions != 5 {
		t.Errorf("Unexpected paging: page=%d pages=%d total=%d", res.CurrentPage, res.TotalPages, res.TotalTransactions)
	}

	_, err = svc.ListTransactions(ctx, userID, transaction.ListTransactionsQuery{Page: transaction.MaxPage + 1, Limit: transaction.MaxLimit})
	if !errors.Is(err, transaction.ErrInvalidPage) {
		t.Errorf("Expected ErrInvalidPage past the last addressable page, got %v", err)
	}

	empty, err := svc.ListTransactions(ctx, userID, transaction.ListTransactionsQuery{Page: 9, Limit: 2})
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if empty.Transactions == nil || len(empty.Transactions) != 0 {
		t.Errorf("Expected an empty, non-nil page, got %v", empty.Transactions)
	}
}

func TestGetSummary(t *testing.T) {
	svc, _, userID := newTestService(t)
	ctx := context.Background()

	summary, err := svc.GetSummary(ctx, userID)
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if summary.TotalIncome != 0 || summary.TotalExpense != 0 || summary.Balance != 0 {
		t.Errorf("Expected zero summary, got %+v", summary)
	}

	for _, r := range []transaction.TransactionRequest{
		request("income", 0.3, "2024-01-01"),
		request("expense", 0.1, "2024-01-02"),
	} {
		if _, err := svc.CreateTransaction(ctx, userID, r); err != nil {
			t.Fatalf("CreateTransaction failed: %v", err)
		}
	}

	summary, err = svc.GetSummary(ctx, userID)
	if err != nil {
		t.Fatalf("GetSummary failed: %v", err)
	}
	if summary.Balance != 0.2 {
		t.Errorf("Expected balance 0.2, got %v", summary.Balance)
	}
}
