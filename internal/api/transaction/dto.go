package transaction

import (
	"ExpenseTracker/internal/entity"
	"math"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit inside int for any accepted limit.
	MaxPage = math.MaxInt / MaxLimit
)

// TransactionRequest is the payload of single create, update and every batch element.
// Amount is a pointer so that an explicit 0 fails on gt rather than on required.
type TransactionRequest struct {
	Type        string   `json:"type" validate:"required,oneof=income expense"`
	Category    string   `json:"category" validate:"required"`
	Amount      *float64 `json:"amount" validate:"required,gt=0"`
	Date        string   `json:"date" validate:"required,isodate"`
	Description string   `json:"description"`
}

type BatchTransactionRequest struct {
	Transactions []TransactionRequest `json:"transactions" validate:"dive"`
}

type ListTransactionsQuery struct {
	Page      int
	Limit     int
	Type      string
	Category  string
	StartDate string
	EndDate   string
}

type CreateTransactionResponse struct {
	Message       string `json:"message"`
	TransactionID int64  `json:"transactionId"`
}

type BatchTransactionResponse struct {
	Message        string  `json:"message"`
	TransactionIDs []int64 `json:"transactionIds"`
}

type GetTransactionResponse struct {
	Transaction entity.Transaction `json:"transaction"`
}

type ListTransactionsResponse struct {
	Transactions      []entity.Transaction `json:"transactions"`
	CurrentPage       int                  `json:"currentPage"`
	TotalPages        int                  `json:"totalPages"`
	TotalTransactions int64                `json:"totalTransactions"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
