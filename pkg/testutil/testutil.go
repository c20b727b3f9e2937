// Package testutil holds helpers shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vertti/docfile/pkg/document"
)

// Rows flattens Records into rows of "column=value" strings, keeping
// column order, so records can be compared with assert.Equal.
// It fails the test if doc is not Records.
func Rows(t *testing.T, doc document.Document) [][]string {
	t.Helper()
	records, ok := doc.(document.Records)
	if !ok {
		t.Fatalf("document is %T, want Records", doc)
	}
	rows := [][]string{}
	for _, rec := range records {
		row := []string{}
		for p := rec.Oldest(); p != nil; p = p.Next() {
			row = append(row, p.Key+"="+p.Value)
		}
		rows = append(rows, row)
	}
	return rows
}

// WriteTempFile creates name with content in a fresh temp directory.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
