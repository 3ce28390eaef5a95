// Package report derives display aggregates from stored transactions.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearpath-dev/clearpath/internal/category"
	"github.com/clearpath-dev/clearpath/internal/model"
)

// Summary is one month's cash flow.
type Summary struct {
	Month    string // YYYY-MM
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// Monthly sums income and expenses for a month. When the month has no income
// transactions, fallbackIncome (the profile's stated monthly income) is used
// instead so the net figure stays meaningful.
func Monthly(txns []model.Transaction, month string, fallbackIncome decimal.Decimal) Summary {
	var income, expenses decimal.Decimal
	for _, txn := range txns {
		if !inMonth(txn, month) {
			continue
		}
		switch txn.Type {
		case model.TypeIncome:
			income = income.Add(txn.Amount)
		case model.TypeExpense:
			expenses = expenses.Add(txn.Amount)
		}
	}
	if income.IsZero() {
		income = fallbackIncome
	}
	return Summary{
		Month:    month,
		Income:   income,
		Expenses: expenses,
		Net:      income.Sub(expenses),
	}
}

// CategoryTotal is one category's expense total.
type CategoryTotal struct {
	Category category.Category
	Total    decimal.Decimal
}

// ExpensesByCategory groups a month's expenses by category, largest first.
func ExpensesByCategory(txns []model.Transaction, month string) []CategoryTotal {
	grouped := make(map[category.Category]decimal.Decimal)
	for _, txn := range txns {
		if !inMonth(txn, month) || txn.Type != model.TypeExpense {
			continue
		}
		grouped[txn.Category] = grouped[txn.Category].Add(txn.Amount)
	}

	totals := make([]CategoryTotal, 0, len(grouped))
	for cat, total := range grouped {
		totals = append(totals, CategoryTotal{Category: cat, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if !totals[i].Total.Equal(totals[j].Total) {
			return totals[i].Total.GreaterThan(totals[j].Total)
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// Burn tracks how fast a month is spending.
type Burn struct {
	Month          string
	DaysElapsed    int
	DaysInMonth    int
	DailyRate      decimal.Decimal // spend per elapsed day
	ProjectedSpend decimal.Decimal // month-end spend at the current rate
}

// BurnRate projects a month's spend from the expenses seen so far. asOf
// outside the month clamps to the month's boundaries.
func BurnRate(txns []model.Transaction, month string, asOf time.Time) (Burn, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return Burn{}, err
	}
	daysInMonth := start.AddDate(0, 1, -1).Day()

	elapsed := daysInMonth
	switch {
	case asOf.Before(start):
		elapsed = 1
	case asOf.Format("2006-01") == month:
		elapsed = asOf.Day()
	}

	var spend decimal.Decimal
	for _, txn := range txns {
		if inMonth(txn, month) && txn.Type == model.TypeExpense {
			spend = spend.Add(txn.Amount)
		}
	}

	rate := spend.Div(decimal.NewFromInt(int64(elapsed)))
	return Burn{
		Month:          month,
		DaysElapsed:    elapsed,
		DaysInMonth:    daysInMonth,
		DailyRate:      rate,
		ProjectedSpend: rate.Mul(decimal.NewFromInt(int64(daysInMonth))),
	}, nil
}

func inMonth(txn model.Transaction, month string) bool {
	return strings.HasPrefix(txn.Date, month)
}
