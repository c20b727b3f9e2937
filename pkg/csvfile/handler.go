// Package csvfile reads and writes tabular files with a header row.
package csvfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"

	"github.com/vertti/docfile/pkg/document"
	"github.com/vertti/docfile/pkg/logger"
)

const filePerm fs.FileMode = 0o644

// Handler reads, writes and appends records of a CSV file.
type Handler struct {
	File  string     // path to the CSV file
	Comma rune       // field delimiter, ',' when zero
	FS    FileSystem // injected for testing
}

var _ document.Handler = (*Handler)(nil)

// New returns a Handler for path backed by the real file system.
func New(path string) *Handler {
	return &Handler{File: path, Comma: ',', FS: &RealFileSystem{}}
}

func (h *Handler) Path() string { return h.File }

func (h *Handler) Format() document.Format { return document.FormatCSV }

// Read parses the file, using the first row as column names.
// A missing or empty file yields empty Records.
func (h *Handler) Read() (document.Document, error) {
	f, err := h.FS.Open(h.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.log().Debug("file not found, returning empty document")
			return document.Records{}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", h.File, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = h.comma()
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", h.File, err)
	}

	records := document.Records{}
	if len(rows) == 0 {
		return records, nil
	}
	header := rows[0]
	for _, row := range rows[1:] {
		rec := document.NewRecord()
		for i, col := range header {
			rec.Set(col, row[i])
		}
		records = append(records, rec)
	}
	return records, nil
}

// Write replaces the file with a header row taken from the first record's
// columns, followed by every record. All records must have the same columns.
// Empty Records leave the file untouched.
func (h *Handler) Write(doc document.Document) error {
	records, ok := doc.(document.Records)
	if !ok {
		return document.UnexpectedDocument(h.Format(), doc)
	}
	if len(records) == 0 {
		h.log().Debug("no records, file left untouched")
		return nil
	}

	header, err := uniformColumns(records)
	if err != nil {
		return err
	}
	return h.put(os.O_WRONLY|os.O_CREATE|os.O_TRUNC, header, records, true)
}

// Append adds the records to the end of the file without a header row.
// Columns are written in the order of the first appended record; they are
// not checked against the header already in the file.
func (h *Handler) Append(doc document.Document) error {
	records, ok := doc.(document.Records)
	if !ok {
		return document.UnexpectedDocument(h.Format(), doc)
	}
	if len(records) == 0 {
		return document.Malformedf("no records to append to %s", h.File)
	}

	columns, err := uniformColumns(records)
	if err != nil {
		return err
	}
	return h.put(os.O_WRONLY|os.O_CREATE|os.O_APPEND, columns, records, false)
}

func (h *Handler) put(flag int, columns []string, records document.Records, withHeader bool) (err error) {
	f, err := h.FS.OpenFile(h.File, flag, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", h.File, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", h.File, cerr)
		}
	}()

	w := csv.NewWriter(f)
	w.Comma = h.comma()
	if withHeader {
		if err := w.Write(columns); err != nil {
			return fmt.Errorf("failed to write %s: %w", h.File, err)
		}
	}
	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			row[i], _ = rec.Get(col)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write %s: %w", h.File, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", h.File, err)
	}

	h.log().Debug("wrote records", "records", len(records), "header", withHeader)
	return nil
}

func (h *Handler) comma() rune {
	if h.Comma == 0 {
		return ','
	}
	return h.Comma
}

func (h *Handler) log() *slog.Logger {
	return logger.Named("csvfile").With("path", h.File)
}

// uniformColumns returns the first record's columns and checks that every
// other record has exactly the same set.
func uniformColumns(records document.Records) ([]string, error) {
	if records[0] == nil || records[0].Len() == 0 {
		return nil, document.Malformedf("record 0 has no columns")
	}
	columns := document.Columns(records[0])
	for i, rec := range records[1:] {
		if rec == nil || rec.Len() != len(columns) {
			return nil, document.Malformedf("record %d columns differ from %v", i+1, columns)
		}
		for p := rec.Oldest(); p != nil; p = p.Next() {
			if !slices.Contains(columns, p.Key) {
				return nil, document.Malformedf("record %d has unknown column %q", i+1, p.Key)
			}
		}
	}
	return columns, nil
}
