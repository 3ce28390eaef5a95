package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-dev/clearpath/internal/category"
	"github.com/clearpath-dev/clearpath/internal/model"
)

func sampleTxns() []model.Transaction {
	return []model.Transaction{
		{
			ID:          "a1",
			Date:        "2024-01-16",
			Description: "Payment Thank You",
			Amount:      decimal.RequireFromString("500.00"),
			Type:        model.TypeIncome,
			Category:    category.PaymentReceived,
		},
		{
			ID:          "a2",
			Date:        "2024-01-15",
			Description: "Amazon Web Services, Inc.",
			Amount:      decimal.RequireFromString("49.99"),
			Type:        model.TypeExpense,
			Category:    category.SoftwareSaaS,
		},
	}
}

func TestTransactionCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, sampleTxns()))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a1", got[0].ID)
	assert.Equal(t, "500.00", got[0].Amount.StringFixed(2))
	assert.Equal(t, model.TypeIncome, got[0].Type)
	// Embedded comma survives quoting.
	assert.Equal(t, "Amazon Web Services, Inc.", got[1].Description)
}

func TestReadTransactions_Empty(t *testing.T) {
	got, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnmarshalTransaction_BadType(t *testing.T) {
	_, err := UnmarshalTransaction([]string{"a1", "2024-01-15", "x", "5.00", "transfer", "Other"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown transaction type")
}

func TestUnmarshalTransaction_BadAmount(t *testing.T) {
	_, err := UnmarshalTransaction([]string{"a1", "2024-01-15", "x", "five", "expense", "Other"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}

func TestStore_AppendAndRead(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Init())

	// Empty store reads as nil.
	txns, err := s.Transactions()
	require.NoError(t, err)
	assert.Nil(t, txns)

	require.NoError(t, s.Append(sampleTxns()[:1]))
	require.NoError(t, s.Append(sampleTxns()[1:]))

	txns, err = s.Transactions()
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "a1", txns[0].ID)
	assert.Equal(t, "a2", txns[1].ID)
}

func TestStore_Delete(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Append(sampleTxns()))

	require.NoError(t, s.Delete("a1"))

	txns, err := s.Transactions()
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, "a2", txns[0].ID)

	err = s.Delete("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SetCategory(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Append(sampleTxns()))

	require.NoError(t, s.SetCategory("a2", category.OfficeSupplies))

	txns, err := s.Transactions()
	require.NoError(t, err)
	assert.Equal(t, category.OfficeSupplies, txns[1].Category)

	assert.Error(t, s.SetCategory("a2", category.Category("Nonsense")))
	assert.ErrorIs(t, s.SetCategory("missing", category.Other), ErrNotFound)
}

func TestStore_ProfileRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	// Missing profile reads as zero value.
	p, err := s.Profile()
	require.NoError(t, err)
	assert.False(t, p.SetupComplete)

	p = model.Profile{
		Name:          "Alex",
		MonthlyIncome: decimal.RequireFromString("6500"),
		SetupComplete: true,
	}
	require.NoError(t, s.SaveProfile(p))

	got, err := s.Profile()
	require.NoError(t, err)
	assert.Equal(t, "Alex", got.Name)
	assert.True(t, got.MonthlyIncome.Equal(decimal.RequireFromString("6500")))
	assert.True(t, got.SetupComplete)
}

func TestStore_SubscriptionsRoundTrip(t *testing.T) {
	s := New(t.TempDir())

	subs := []model.Subscription{
		{Name: "Netflix", Category: category.Entertainment, Amount: decimal.RequireFromString("15.99"), LastCharge: "2024-01-10"},
	}
	require.NoError(t, s.SaveSubscriptions(subs))

	got, err := s.Subscriptions()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Netflix", got[0].Name)
	assert.Equal(t, category.Entertainment, got[0].Category)
}

func TestStore_Backup(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.SaveProfile(model.Profile{Name: "Alex", SetupComplete: true}))
	require.NoError(t, s.Append(sampleTxns()))

	var buf bytes.Buffer
	require.NoError(t, s.Backup(&buf))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Contains(t, doc, "user")
	assert.Contains(t, doc, "transactions")
	assert.Contains(t, doc, "subscriptions")
	assert.Contains(t, doc, "exported_at")

	var txns []model.Transaction
	require.NoError(t, json.Unmarshal(doc["transactions"], &txns))
	assert.Len(t, txns, 2)
}

func TestStore_Reset(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Init())
	require.NoError(t, s.SaveProfile(model.Profile{Name: "Alex"}))
	require.NoError(t, s.Append(sampleTxns()))

	require.NoError(t, s.Reset())

	_, err := os.Stat(filepath.Join(dir, "transactions.csv"))
	assert.True(t, os.IsNotExist(err))
	txns, err := s.Transactions()
	require.NoError(t, err)
	assert.Nil(t, txns)

	// Resetting an already-empty store is fine.
	require.NoError(t, s.Reset())
}
