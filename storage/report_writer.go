package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReportWriter persists rendered documentation next to the CSV tables.
type ReportWriter struct {
	dir string
}

// NewReportWriter creates the output directory if needed.
func NewReportWriter(dir string) (*ReportWriter, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("report: create output dir: %w", err)
	}
	return &ReportWriter{dir: dir}, nil
}

// WriteReadme writes the dataset README.
func (w *ReportWriter) WriteReadme(content string) error {
	path := filepath.Join(w.dir, "README.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("report: write %q: %w", path, err)
	}
	return nil
}
