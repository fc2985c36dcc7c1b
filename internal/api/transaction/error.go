package transaction

import (
	"ExpenseTracker/pkg/response"
	"net/http"
)

var (
	ErrTransactionNotFound    = response.NewError(http.StatusNotFound, "Transaction not found")
	ErrEmptyBatch             = response.NewError(http.StatusBadRequest, "Please provide an array of transactions.")
	ErrInvalidTransactionID   = response.NewError(http.StatusBadRequest, "transaction id must be a positive integer")
	ErrInvalidPage            = response.NewError(http.StatusBadRequest, "page must be a positive integer")
	ErrInvalidLimit           = response.NewError(http.StatusBadRequest, "limit must be a positive integer")
	ErrInvalidTransactionType = response.NewError(http.StatusBadRequest, "type must be one of [income expense]")
	ErrInvalidDateFilter      = response.NewError(http.StatusBadRequest, "startDate and endDate must be valid ISO 8601 dates")
)
