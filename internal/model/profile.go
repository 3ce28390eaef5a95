package model

import (
	"github.com/shopspring/decimal"

	"github.com/clearpath-dev/clearpath/internal/category"
)

// Profile holds the user's local settings.
type Profile struct {
	Name          string          `json:"name"`
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	SetupComplete bool            `json:"setup_complete"`
}

// Subscription is a recurring charge the user tracks by hand.
type Subscription struct {
	Name       string            `json:"name"`
	Category   category.Category `json:"category"`
	Amount     decimal.Decimal   `json:"amount"`
	LastCharge string            `json:"last_charge,omitempty"` // YYYY-MM-DD
}
