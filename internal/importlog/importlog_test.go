package importlog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp:   testTime,
		FileName:    "bank.csv",
		TotalRows:   42,
		HasHeader:   true,
		ColumnCount: 5,
		Parsed:      40,
		Skipped:     2,
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bank.csv", entries[0].FileName)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.FileName = "visa.csv"
	e2.Parsed = 0
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "bank.csv", entries[0].FileName)
	assert.Equal(t, "visa.csv", entries[1].FileName)
	assert.Zero(t, entries[1].Parsed)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	require.NoError(t, Append(dir, []Entry{original}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, original, entries[0])
}

func TestRead_MissingFile(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})
	assert.Error(t, err)
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	rec := MarshalEntry(testEntry())
	rec[0] = "yesterday"
	_, err := UnmarshalEntry(rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}
