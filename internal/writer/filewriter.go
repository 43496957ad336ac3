// Package writer exposes sinks for benchmark reports.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink receives a complete report.
type Sink interface {
	WriteReport(buf []byte) error
}

// FileWriter writes reports to a filesystem path atomically.
type FileWriter struct {
	Path string
}

// WriteReport writes buf to the configured path via temp file + rename, so
// readers never observe a partial report.
func (w *FileWriter) WriteReport(buf []byte) error {
	dir := filepath.Dir(w.Path)
	tmpFile, err := os.CreateTemp(dir, ".veckit-report-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(buf); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
