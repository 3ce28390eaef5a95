package model

import (
	"github.com/shopspring/decimal"

	"github.com/clearpath-dev/clearpath/internal/category"
)

// TransactionType says which direction money moved.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction is one normalized statement row.
type Transaction struct {
	ID          string            `json:"id"`
	Date        string            `json:"date"` // YYYY-MM-DD; lexicographic order is chronological
	Description string            `json:"description"`
	Amount      decimal.Decimal   `json:"amount"` // always positive, direction carried by Type
	Type        TransactionType   `json:"type"`
	Category    category.Category `json:"category"`
}
