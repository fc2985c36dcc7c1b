package entity

import "time"

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func IsValidTransactionType(t string) bool {
	switch TransactionType(t) {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// DateLayout is the calendar-date form every transaction date is stored in.
// Range filters compare stored dates as text, which is only correct for this layout.
const DateLayout = "2006-01-02"

// NormalizeDate accepts a calendar date or an RFC 3339 date-time and returns
// the calendar date in DateLayout.
func NormalizeDate(value string) (string, bool) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t.Format(DateLayout), true
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(DateLayout), true
		}
	}
	return "", false
}

type Transaction struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId,omitempty"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

type TransactionFilter struct {
	UserID    int64
	Type      string
	Category  string
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
}

type Summary struct {
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
}
