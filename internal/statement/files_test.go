package statement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanInbox(t *testing.T) {
	dir := t.TempDir()
	inbox := filepath.Join(dir, "statements")
	require.NoError(t, os.MkdirAll(inbox, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(inbox, "bank.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inbox, "export.txt"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(inbox, "statement.pdf"), []byte("data"), 0o644))

	files, err := ScanInbox(dir)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "bank.csv", files[0].Name)
	assert.Equal(t, "export.txt", files[1].Name)
}

func TestScanInbox_MissingDir(t *testing.T) {
	files, err := ScanInbox(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestScanInbox_IgnoresProcessed(t *testing.T) {
	dir := t.TempDir()
	processed := filepath.Join(dir, "statements", "processed")
	require.NoError(t, os.MkdirAll(processed, 0o755))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "statements", "new.csv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(processed, "old.csv"), []byte("x"), 0o644))

	files, err := ScanInbox(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	inbox := filepath.Join(dir, "statements")
	require.NoError(t, os.MkdirAll(inbox, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(inbox, "bank.csv"), []byte("x"), 0o644))

	require.NoError(t, MarkProcessed(dir, "bank.csv"))

	_, err := os.Stat(filepath.Join(inbox, "bank.csv"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dir, "statements", "processed", "bank.csv"))
	assert.NoError(t, err)
}
