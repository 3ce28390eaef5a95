// Package importlog keeps an append-only record of statement import
// attempts, successful or not, so unparseable files can be diagnosed after
// the fact.
package importlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the import log.
type Entry struct {
	Timestamp   time.Time
	FileName    string
	TotalRows   int
	HasHeader   bool
	ColumnCount int
	Parsed      int
	Skipped     int
}

// Header is the CSV header for import-log.csv.
const Header = "timestamp,file,total_rows,has_header,column_count,parsed,skipped"

const (
	numFields    = 7
	logDir       = "logs"
	logFile      = "logs/import-log.csv"
	colTimestamp = 0
	colFile      = 1
	colRows      = 2
	colHeader    = 3
	colColumns   = 4
	colParsed    = 5
	colSkipped   = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colFile] = e.FileName
	row[colRows] = strconv.Itoa(e.TotalRows)
	row[colHeader] = strconv.FormatBool(e.HasHeader)
	row[colColumns] = strconv.Itoa(e.ColumnCount)
	row[colParsed] = strconv.Itoa(e.Parsed)
	row[colSkipped] = strconv.Itoa(e.Skipped)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	rows, err := strconv.Atoi(record[colRows])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing total_rows %q: %w", record[colRows], err)
	}

	hasHeader, err := strconv.ParseBool(record[colHeader])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing has_header %q: %w", record[colHeader], err)
	}

	columns, err := strconv.Atoi(record[colColumns])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing column_count %q: %w", record[colColumns], err)
	}

	parsed, err := strconv.Atoi(record[colParsed])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing parsed %q: %w", record[colParsed], err)
	}

	skipped, err := strconv.Atoi(record[colSkipped])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing skipped %q: %w", record[colSkipped], err)
	}

	return Entry{
		Timestamp:   ts,
		FileName:    record[colFile],
		TotalRows:   rows,
		HasHeader:   hasHeader,
		ColumnCount: columns,
		Parsed:      parsed,
		Skipped:     skipped,
	}, nil
}

// Append writes entries to <dataDir>/logs/import-log.csv, creating the file
// and header if needed.
func Append(dataDir string, entries []Entry) error {
	dir := filepath.Join(dataDir, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(dataDir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dataDir>/logs/import-log.csv. Returns nil
// if the file does not exist.
func Read(dataDir string) ([]Entry, error) {
	path := filepath.Join(dataDir, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening import log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading import log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
