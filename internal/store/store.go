// Package store persists the user's data under a local directory: a
// transactions CSV plus JSON blobs for profile and subscriptions. There are
// no durability guarantees beyond what the filesystem provides.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/clearpath-dev/clearpath/internal/category"
	"github.com/clearpath-dev/clearpath/internal/model"
)

const (
	transactionsFile  = "transactions.csv"
	profileFile       = "profile.json"
	subscriptionsFile = "subscriptions.json"
)

// ErrNotFound is returned when an operation names a transaction id that does
// not exist.
var ErrNotFound = errors.New("transaction not found")

// Store is a file-backed store rooted at a data directory.
type Store struct {
	dataDir string
}

// New creates a Store for a data directory.
func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// Init creates the data directory and the statements inbox.
func (s *Store) Init() error {
	for _, dir := range []string{s.dataDir, filepath.Join(s.dataDir, "statements")} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// Transactions returns all stored transactions. A missing file is an empty
// store, not an error.
func (s *Store) Transactions() ([]model.Transaction, error) {
	path := filepath.Join(s.dataDir, transactionsFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return txns, nil
}

// SaveTransactions replaces the stored transaction list.
func (s *Store) SaveTransactions(txns []model.Transaction) error {
	path := filepath.Join(s.dataDir, transactionsFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteTransactions(f, txns); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Append adds transactions to the store, creating the file (with header) on
// first use.
func (s *Store) Append(txns []model.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	path := filepath.Join(s.dataDir, transactionsFile)
	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendTransactions(f, txns); err != nil {
		return fmt.Errorf("appending transactions: %w", err)
	}
	return nil
}

// Delete removes a transaction by id.
func (s *Store) Delete(id string) error {
	txns, err := s.Transactions()
	if err != nil {
		return err
	}

	kept := txns[:0]
	found := false
	for _, txn := range txns {
		if txn.ID == id {
			found = true
			continue
		}
		kept = append(kept, txn)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.SaveTransactions(kept)
}

// SetCategory overrides a transaction's category, a collaborator-side edit
// the parser never performs.
func (s *Store) SetCategory(id string, cat category.Category) error {
	if !category.Valid(cat) {
		return fmt.Errorf("unknown category %q", cat)
	}

	txns, err := s.Transactions()
	if err != nil {
		return err
	}

	found := false
	for i := range txns {
		if txns[i].ID == id {
			txns[i].Category = cat
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.SaveTransactions(txns)
}

// Profile returns the stored profile, or a zero profile when none exists.
func (s *Store) Profile() (model.Profile, error) {
	var p model.Profile
	err := s.readJSON(profileFile, &p)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Profile{}, nil
	}
	return p, err
}

// SaveProfile stores the profile.
func (s *Store) SaveProfile(p model.Profile) error {
	return s.writeJSON(profileFile, p)
}

// Subscriptions returns the stored subscription list.
func (s *Store) Subscriptions() ([]model.Subscription, error) {
	var subs []model.Subscription
	err := s.readJSON(subscriptionsFile, &subs)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return subs, err
}

// SaveSubscriptions stores the subscription list.
func (s *Store) SaveSubscriptions(subs []model.Subscription) error {
	return s.writeJSON(subscriptionsFile, subs)
}

// backup is the export file layout.
type backup struct {
	User          model.Profile        `json:"user"`
	Transactions  []model.Transaction  `json:"transactions"`
	Subscriptions []model.Subscription `json:"subscriptions"`
	ExportedAt    string               `json:"exported_at"`
}

// Backup writes the whole store as one JSON document.
func (s *Store) Backup(w io.Writer) error {
	profile, err := s.Profile()
	if err != nil {
		return err
	}
	txns, err := s.Transactions()
	if err != nil {
		return err
	}
	subs, err := s.Subscriptions()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(backup{
		User:          profile,
		Transactions:  txns,
		Subscriptions: subs,
		ExportedAt:    time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}

// Reset deletes every data file. The statements inbox is left alone.
func (s *Store) Reset() error {
	for _, name := range []string{transactionsFile, profileFile, subscriptionsFile} {
		path := filepath.Join(s.dataDir, name)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}
	return nil
}

func (s *Store) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dataDir, name))
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func (s *Store) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", name, err)
	}
	path := filepath.Join(s.dataDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
