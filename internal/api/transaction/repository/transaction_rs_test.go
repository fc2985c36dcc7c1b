package transactionRepository

import (
	"ExpenseTracker/database/sqlite"
	"ExpenseTracker/internal/api/transaction"
	"ExpenseTracker/internal/entity"
	"ExpenseTracker/pkg/log"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func createUser(t *testing.T, db *sqlx.DB, username string) int64 {
	t.Helper()

	var id int64
	if err := db.QueryRowx("INSERT INTO users (username, password) VALUES (?, ?) RETURNING id", username, "hash").Scan(&id); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return id
}

func countRows(t *testing.T, db *sqlx.DB) int {
	t.Helper()

	var n int
	if err := db.Get(&n, "SELECT COUNT(*) FROM transactions"); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

func sample(userID int64, txType entity.TransactionType, amount float64, date string) entity.Transaction {
	return entity.Transaction{
		UserID:   userID,
		Type:     string(txType),
		Category: "misc",
		Amount:   amount,
		Date:     date,
	}
}

func TestTransactionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := New(db, log.NewDiscardLogger())
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	client, err := repo.NewClient(false)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	t.Run("Create and GetByID round trip", func(t *testing.T) {
		in := sample(alice, entity.TransactionTypeIncome, 250.5, "2024-05-01")
		in.Description = "bonus"

		id, err := client.Transactions.Create(ctx, in)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := client.Transactions.GetByID(ctx, alice, id)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}

		in.ID = id
		if got != in {
			t.Errorf("Expected %+v, got %+v", in, got)
		}
	})

	t.Run("GetByID is scoped to the owner", func(t *testing.T) {
		id, err := client.Transactions.Create(ctx, sample(alice, entity.TransactionTypeExpense, 5, "2024-05-02"))
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if _, err := client.Transactions.GetByID(ctx, bob, id); !errors.Is(err, transaction.ErrTransactionNotFound) {
			t.Errorf("Expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("Check constraint maps to bad request", func(t *testing.T) {
		_, err := client.Transactions.Create(ctx, sample(alice, "gift", 1, "2024-05-03"))
		if !errors.Is(err, transaction.ErrInvalidTransactionType) {
			t.Errorf("Expected ErrInvalidTransactionType, got %v", err)
		}
	})
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := New(db, log.NewDiscardLogger())
	ctx := context.Background()

	userID := createUser(t, db, "alice")
	client, _ := repo.NewClient(false)

	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"} {
		if _, err := client.Transactions.Create(ctx, sample(userID, entity.TransactionTypeExpense, 10, date)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	if _, err := client.Transactions.Create(ctx, sample(userID, entity.TransactionTypeIncome, 10, "2024-01-06")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	filter := entity.TransactionFilter{UserID: userID, Type: "expense", Limit: 2, Offset: 2}

	rows, err := client.Transactions.List(ctx, filter)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(rows))
	}
	if rows[0].Date != "2024-01-03" || rows[1].Date != "2024-01-04" {
		t.Errorf("Unexpected page contents: %+v", rows)
	}

	total, err := client.Transactions.Count(ctx, filter)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if total != 5 {
		t.Errorf("Expected 5 matching rows, got %d", total)
	}

	ranged := entity.TransactionFilter{UserID: userID, StartDate: "2024-01-02", EndDate: "2024-01-04", Limit: 10}
	if total, _ := client.Transactions.Count(ctx, ranged); total != 3 {
		t.Errorf("Expected 3 rows in date range, got %d", total)
	}
}

func TestUpdateAndDeleteMissingRow(t *testing.T) {
	db := newTestDB(t)
	repo := New(db, log.NewDiscardLogger())
	ctx := context.Background()

	userID := createUser(t, db, "alice")
	client, _ := repo.NewClient(false)

	id, err := client.Transactions.Create(ctx, sample(userID, entity.TransactionTypeIncome, 100, "2024-01-01"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	missing := sample(userID, entity.TransactionTypeExpense, 1, "2024-01-01")
	missing.ID = id + 100

	if err := client.Transactions.Update(ctx, missing); !errors.Is(err, transaction.ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound on update, got %v", err)
	}
	if err := client.Transactions.Delete(ctx, userID, id+100); !errors.Is(err, transaction.ErrTransactionNotFound) {
		t.Errorf("Expected ErrTransactionNotFound on delete, got %v", err)
	}

	got, err := client.Transactions.GetByID(ctx, userID, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Type != "income" || got.Amount != 100 {
		t.Errorf("Existing row changed: %+v", got)
	}
	if n := countRows(t, db); n != 1 {
		t.Errorf("Expected 1 row, got %d", n)
	}
}

func TestTransactionalClientRollsBack(t *testing.T) {
	db := newTestDB(t)
	repo := New(db, log.NewDiscardLogger())
	ctx := context.Background()

	userID := createUser(t, db, "alice")

	client, err := repo.NewClient(true)
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	batch := []entity.Transaction{
		sample(userID, entity.TransactionTypeIncome, 1, "2024-01-01"),
		sample(userID, entity.TransactionTypeIncome, 2, "2024-01-02"),
		sample(userID, "gift", 3, "2024-01-03"),
	}

	var failed error
	for _, tx := range batch {
		if _, err := client.Transactions.Create(ctx, tx); err != nil {
			failed = err
			break
		}
	}
	if failed == nil {
		t.Fatal("Expected the third insert to be rejected")
	}
	if err := client.Rollback(); err != nil {
		t.Fatalf("Rollback failed: %v", err)
	}

	if n := countRows(t, db); n != 0 {
		t.Errorf("Expected no rows after rollback, got %d", n)
	}
}

func TestSumByType(t *testing.T) {
	db := newTestDB(t)
	repo := New(db, log.NewDiscardLogger())
	ctx := context.Background()

	userID := createUser(t, db, "alice")
	client, _ := repo.NewClient(false)

	sum, err := client.Transactions.SumByType(ctx, userID, entity.TransactionTypeIncome)
	if err != nil {
		t.Fatalf("SumByType failed: %v", err)
	}
	if sum != 0 {
		t.Errorf("Expected 0 for no rows, got %v", sum)
	}

	for _, a := range []float64{40, 60} {
		if _, err := client.Transactions.Create(ctx, sample(userID, entity.TransactionTypeIncome, a, "2024-01-01")); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	sum, err = client.Transactions.SumByType(ctx, userID, entity.TransactionTypeIncome)
	if err != nil {
		t.Fatalf("SumByType failed: %v", err)
	}
	if sum != 100 {
		t.Errorf("Expected 100, got %v", sum)
	}
}
