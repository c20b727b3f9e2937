// Package textfile reads and writes UTF-8 text files as a sequence of lines.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/vertti/docfile/pkg/document"
	"github.com/vertti/docfile/pkg/logger"
)

const filePerm fs.FileMode = 0o644

// Handler reads, writes and appends lines of a text file.
type Handler struct {
	File string     // path to the text file
	FS   FileSystem // injected for testing
}

var _ document.Handler = (*Handler)(nil)

// New returns a Handler for path backed by the real file system.
func New(path string) *Handler {
	return &Handler{File: path, FS: &RealFileSystem{}}
}

func (h *Handler) Path() string { return h.File }

func (h *Handler) Format() document.Format { return document.FormatText }

// Read returns the file's lines with surrounding whitespace removed.
// A missing file yields empty Lines.
func (h *Handler) Read() (document.Document, error) {
	lines, err := h.ReadLines()
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadLines is Read without the Document wrapper.
func (h *Handler) ReadLines() (document.Lines, error) {
	f, err := h.FS.Open(h.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.log().Debug("file not found, returning empty document")
			return document.Lines{}, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", h.File, err)
	}
	defer func() { _ = f.Close() }()

	lines := document.Lines{}
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", h.File, err)
		}
	}
	return lines, nil
}

// Write replaces the file content with the lines joined by a newline.
// No trailing newline is written.
func (h *Handler) Write(doc document.Document) error {
	lines, ok := doc.(document.Lines)
	if !ok {
		return document.UnexpectedDocument(h.Format(), doc)
	}
	return h.put(os.O_WRONLY|os.O_CREATE|os.O_TRUNC, strings.Join(lines, "\n"))
}

// Append writes a newline followed by the joined lines to the end of the file.
// The leading newline is written even when the file is empty or already ends
// with one, so appending to a fresh file starts with a blank line.
func (h *Handler) Append(doc document.Document) error {
	lines, ok := doc.(document.Lines)
	if !ok {
		return document.UnexpectedDocument(h.Format(), doc)
	}
	return h.put(os.O_WRONLY|os.O_CREATE|os.O_APPEND, "\n"+strings.Join(lines, "\n"))
}

func (h *Handler) put(flag int, content string) (err error) {
	f, err := h.FS.OpenFile(h.File, flag, filePerm)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", h.File, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", h.File, cerr)
		}
	}()

	n, err := io.WriteString(f, content)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", h.File, err)
	}
	h.log().Debug("wrote text", "bytes", n, "append", flag&os.O_APPEND != 0)
	return nil
}

func (h *Handler) log() *slog.Logger {
	return logger.Named("textfile").With("path", h.File)
}
