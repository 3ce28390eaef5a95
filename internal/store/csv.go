package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/clearpath-dev/clearpath/internal/category"
	"github.com/clearpath-dev/clearpath/internal/model"
)

// Header is the CSV header for transactions.csv.
const Header = "id,date,description,amount,type,category"

const (
	numFields   = 6
	colID       = 0
	colDate     = 1
	colDesc     = 2
	colAmount   = 3
	colType     = 4
	colCategory = 5
)

// ReadTransactions reads all transactions from a transactions.csv reader.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes transactions to a transactions.csv writer
// (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions appends transactions to an existing writer (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, numFields)
	row[colID] = txn.ID
	row[colDate] = txn.Date
	row[colDesc] = txn.Description
	row[colAmount] = txn.Amount.StringFixed(2)
	row[colType] = string(txn.Type)
	row[colCategory] = string(txn.Category)
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	txType := model.TransactionType(record[colType])
	if txType != model.TypeIncome && txType != model.TypeExpense {
		return model.Transaction{}, fmt.Errorf("unknown transaction type %q", record[colType])
	}

	return model.Transaction{
		ID:          record[colID],
		Date:        record[colDate],
		Description: record[colDesc],
		Amount:      amount,
		Type:        txType,
		Category:    category.Category(record[colCategory]),
	}, nil
}
