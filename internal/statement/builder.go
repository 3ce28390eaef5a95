package statement

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearpath-dev/clearpath/internal/category"
	"github.com/clearpath-dev/clearpath/internal/id"
	"github.com/clearpath-dev/clearpath/internal/model"
)

// SkipReason explains why a row produced no transaction.
type SkipReason string

const (
	SkipNoUsableColumns SkipReason = "no usable columns"
	SkipNoAmount        SkipReason = "no amount"
	SkipBadAmount       SkipReason = "bad amount"
	SkipBelowMinimum    SkipReason = "below minimum"
)

// RowSkip records one dropped data row. The builder never fails per row;
// skips are the only per-row diagnostic channel.
type RowSkip struct {
	Row    int // 0-based index into the data rows
	Reason SkipReason
}

// minAmount is the smallest amount treated as a real transaction. Sub-cent
// and zero rows are noise.
var minAmount = decimal.New(1, -2)

// Builder converts role-mapped rows into transactions.
type Builder struct {
	classifier *category.Classifier

	// test seams
	now   func() time.Time
	newID func() string
}

// NewBuilder creates a Builder using the given classifier for default
// categories.
func NewBuilder(classifier *category.Classifier) *Builder {
	return &Builder{classifier: classifier, now: time.Now, newID: id.New}
}

// Build processes rows in file order, each row independently, then sorts the
// output newest first. Malformed rows are recorded as skips, never errors.
func (b *Builder) Build(rows []RawRow, m ColumnMapping) ([]model.Transaction, []RowSkip) {
	var txns []model.Transaction
	var skips []RowSkip

	for i, row := range rows {
		txn, skip := b.buildRow(row, m)
		if skip != "" {
			skips = append(skips, RowSkip{Row: i, Reason: skip})
			continue
		}
		txns = append(txns, txn)
	}

	// Zero-padded dates make lexicographic order chronological. Stable sort
	// keeps file order within a day.
	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date > txns[j].Date
	})
	return txns, skips
}

func (b *Builder) buildRow(row RawRow, m ColumnMapping) (model.Transaction, SkipReason) {
	var amount decimal.Decimal
	txType := model.TypeExpense

	switch {
	case m.HasDebitCredit():
		debit, debitOK := ParseAmount(cellAt(row, m.DebitCol))
		credit, creditOK := ParseAmount(cellAt(row, m.CreditCol))
		switch {
		case creditOK && credit.IsPositive():
			amount = credit
			txType = model.TypeIncome
		case debitOK && debit.IsPositive():
			amount = debit
		default:
			return model.Transaction{}, SkipNoAmount
		}

	case m.HasAmount():
		raw, ok := ParseAmount(cellAt(row, m.AmountCol))
		if !ok {
			return model.Transaction{}, SkipBadAmount
		}
		amount = raw.Abs()
		if !raw.IsNegative() {
			txType = model.TypeIncome
		}

	default:
		return model.Transaction{}, SkipNoUsableColumns
	}

	if amount.LessThan(minAmount) {
		return model.Transaction{}, SkipBelowMinimum
	}

	description := cellAt(row, m.DescCol)
	if description == "" {
		description = "Unknown"
	}

	// A transaction is never dateless: unparseable dates fall back to today.
	date, ok := ParseDate(cellAt(row, m.DateCol))
	if !ok {
		date = b.now().Format(dateFormat)
	}

	return model.Transaction{
		ID:          b.newID(),
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        txType,
		Category:    b.classifier.Classify(description),
	}, ""
}

// cellAt returns row[col], or "" when the role is absent or the row is too
// short.
func cellAt(row RawRow, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
