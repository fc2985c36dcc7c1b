package transactionHandler

import (
	"ExpenseTracker/internal/api/transaction"
	"ExpenseTracker/internal/entity"
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func parseID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, transaction.ErrInvalidTransactionID
	}
	return id, nil
}

// parsePositive returns fallback for an absent value and errInvalid for
// anything that is not an integer in [1, max].
func parsePositive(raw string, fallback, max int, errInvalid error) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 || value > max {
		return 0, errInvalid
	}
	return value, nil
}

func parseListQuery(ctx *fiber.Ctx) (transaction.ListTransactionsQuery, error) {
	page, err := parsePositive(ctx.Query("page"), transaction.DefaultPage, transaction.MaxPage, transaction.ErrInvalidPage)
	if err != nil {
		return transaction.ListTransactionsQuery{}, err
	}

	// Oversized limits are clamped rather than rejected.
	limit, err := parsePositive(ctx.Query("limit"), transaction.DefaultLimit, math.MaxInt, transaction.ErrInvalidLimit)
	if err != nil {
		return transaction.ListTransactionsQuery{}, err
	}
	if limit > transaction.MaxLimit {
		limit = transaction.MaxLimit
	}

	query := transaction.ListTransactionsQuery{
		Page:     page,
		Limit:    limit,
		Type:     ctx.Query("type"),
		Category: ctx.Query("category"),
	}

	if query.Type != "" && !entity.IsValidTransactionType(query.Type) {
		return transaction.ListTransactionsQuery{}, transaction.ErrInvalidTransactionType
	}

	if raw := ctx.Query("startDate"); raw != "" {
		date, ok := entity.NormalizeDate(raw)
		if !ok {
			return transaction.ListTransactionsQuery{}, transaction.ErrInvalidDateFilter
		}
		query.StartDate = date
	}

	if raw := ctx.Query("endDate"); raw != "" {
		date, ok := entity.NormalizeDate(raw)
		if !ok {
			return transaction.ListTransactionsQuery{}, transaction.ErrInvalidDateFilter
		}
		query.EndDate = date
	}

	return query, nil
}
