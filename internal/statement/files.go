package statement

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// inboxDir is the subdirectory statements wait in before import.
const inboxDir = "statements"

// processedDir is where imported statements are moved.
const processedDir = "statements/processed"

// FileInfo describes a statement file waiting in the inbox.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// ScanInbox returns importable files in <dataDir>/statements/. Only .csv and
// .txt are picked up; everything else is left alone.
func ScanInbox(dataDir string) ([]FileInfo, error) {
	dir := filepath.Join(dataDir, inboxDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading statements dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.ToLower(e.Name())
		if !strings.HasSuffix(name, ".csv") && !strings.HasSuffix(name, ".txt") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from statements/ to statements/processed/.
func MarkProcessed(dataDir, fileName string) error {
	src := filepath.Join(dataDir, inboxDir, fileName)
	dstDir := filepath.Join(dataDir, processedDir)

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}
