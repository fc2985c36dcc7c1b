package config

import (
	"ExpenseTracker/internal/api/transaction"
	"ExpenseTracker/pkg/handlerUtil"
	"testing"
)

func amount(v float64) *float64 {
	return &v
}

func TestTransactionValidation(t *testing.T) {
	validate := NewValidator()

	valid := transaction.TransactionRequest{
		Type:     "income",
		Category: "salary",
		Amount:   amount(100),
		Date:     "2024-01-31",
	}

	tests := []struct {
		name    string
		mutate  func(r *transaction.TransactionRequest)
		wantErr string
	}{
		{"valid", func(r *transaction.TransactionRequest) {}, ""},
		{"rfc3339 date", func(r *transaction.TransactionRequest) { r.Date = "2024-01-31T08:00:00Z" }, ""},
		{"negative amount", func(r *transaction.TransactionRequest) { r.Amount = amount(-5) }, `"amount" must be a positive number`},
		{"zero amount", func(r *transaction.TransactionRequest) { r.Amount = amount(0) }, `"amount" must be a positive number`},
		{"missing amount", func(r *transaction.TransactionRequest) { r.Amount = nil }, `"amount" is required`},
		{"unknown type", func(r *transaction.TransactionRequest) { r.Type = "gift" }, `"type" must be one of [income expense]`},
		{"missing category", func(r *transaction.TransactionRequest) { r.Category = "" }, `"category" is required`},
		{"bad date", func(r *transaction.TransactionRequest) { r.Date = "yesterday" }, `"date" must be a valid ISO 8601 date`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := validate.Struct(req)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Expected a validation error")
			}
			if got := handlerUtil.FirstError(err).Error(); got != tt.wantErr {
				t.Errorf("Expected %q, got %q", tt.wantErr, got)
			}
		})
	}
}

func TestBatchValidationNamesElement(t *testing.T) {
	validate := NewValidator()

	req := transaction.BatchTransactionRequest{
		Transactions: []transaction.TransactionRequest{
			{Type: "income", Category: "salary", Amount: amount(10), Date: "2024-01-01"},
			{Type: "expense", Category: "food", Amount: amount(-1), Date: "2024-01-02"},
		},
	}

	err := validate.Struct(req)
	if err == nil {
		t.Fatal("Expected a validation error")
	}

	want := `"transactions[1].amount" must be a positive number`
	if got := handlerUtil.FirstError(err).Error(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
