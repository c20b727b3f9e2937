// Package jsonfile reads and writes a JSON document held in a single file.
//
// The file holds one JSON value whose root is an object; writing an array is
// also accepted. Output is indented and keeps non-ASCII characters literal.
// Append merges the incoming object over the stored one, key by key.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vertti/docfile/pkg/document"
	"github.com/vertti/docfile/pkg/logger"
)

// DefaultIndent is the indentation used when Handler.Indent is empty.
const DefaultIndent = "    "

const filePerm fs.FileMode = 0o644

var (
	// ErrNotObject is returned by Append when the stored document is not a JSON object.
	ErrNotObject = fmt.Errorf("%w: root is not a JSON object", document.ErrMalformedInput)
	// ErrKeyNotFound is returned by Lookup when the path matches nothing.
	ErrKeyNotFound = errors.New("key not found")
)

// Handler reads, writes and merges a JSON document.
type Handler struct {
	File   string     // path to the JSON file
	Indent string     // per-level indentation, DefaultIndent when empty
	FS     FileSystem // injected for testing
}

var _ document.Handler = (*Handler)(nil)

// New returns a Handler for path backed by the real file system.
func New(path string) *Handler {
	return &Handler{File: path, Indent: DefaultIndent, FS: &RealFileSystem{}}
}

func (h *Handler) Path() string { return h.File }

func (h *Handler) Format() document.Format { return document.FormatJSON }

// Read parses the file. An object root yields Object, an array root yields
// Array. A missing file yields an empty Object.
func (h *Handler) Read() (document.Document, error) {
	content, found, err := h.load()
	if err != nil {
		return nil, err
	}
	if !found {
		return document.Object{}, nil
	}

	doc, err := Decode(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", h.File, err)
	}
	return doc, nil
}

// Write replaces the file with the indented encoding of an Object or Array.
func (h *Handler) Write(doc document.Document) error {
	switch doc.(type) {
	case document.Object, document.Array:
	default:
		return document.UnexpectedDocument(h.Format(), doc)
	}
	return h.store(doc)
}

// Append shallow-merges an Object into the stored object: incoming keys
// replace existing keys of the same name, other existing keys are kept.
// A missing file is treated as an empty object.
func (h *Handler) Append(doc document.Document) error {
	incoming, ok := doc.(document.Object)
	if !ok {
		return document.UnexpectedDocument(h.Format(), doc)
	}

	content, found, err := h.load()
	if err != nil {
		return err
	}

	merged := document.Object{}
	if found {
		if !gjson.ParseBytes(content).IsObject() {
			return fmt.Errorf("cannot append to %s: %w", h.File, ErrNotObject)
		}
		if err := unmarshal(content, &merged); err != nil {
			return fmt.Errorf("%s: %w", h.File, err)
		}
	}
	maps.Copy(merged, incoming)

	h.log().Debug("merged keys", "incoming", len(incoming), "total", len(merged))
	return h.store(merged)
}

// Lookup returns the value at a dot-notation path (e.g. "database.host").
// Strings are returned unquoted, null as "null", everything else as raw JSON.
func (h *Handler) Lookup(path string) (string, error) {
	content, found, err := h.load()
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, path)
	}

	res := gjson.GetBytes(content, path)
	if !res.Exists() {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, path)
	}
	if res.Type == gjson.Null {
		return "null", nil
	}
	return res.String(), nil
}

// Decode parses content into an Object or Array. Numbers are kept as
// json.Number, so integers beyond float64 precision are written back as read.
func Decode(content []byte) (document.Document, error) {
	if !gjson.ValidBytes(content) {
		return nil, document.Malformedf("invalid JSON syntax")
	}
	root := gjson.ParseBytes(content)
	switch {
	case root.IsObject():
		obj := document.Object{}
		if err := unmarshal(content, &obj); err != nil {
			return nil, err
		}
		return obj, nil
	case root.IsArray():
		arr := document.Array{}
		if err := unmarshal(content, &arr); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, document.Malformedf("root must be an object or array, got %s", root.Type)
	}
}

func unmarshal(content []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return document.Malformedf("%v", err)
	}
	return nil
}

// Encode renders doc the way Write stores it.
func Encode(doc document.Document, indent string) ([]byte, error) {
	if indent == "" {
		indent = DefaultIndent
	}
	switch d := doc.(type) {
	case document.Object:
		if d == nil {
			doc = document.Object{}
		}
	case document.Array:
		if d == nil {
			doc = document.Array{}
		}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return literalSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

// literalSeparators turns the \u2028 and \u2029 escapes that encoding/json
// always emits back into the characters themselves. Escaped backslashes are
// skipped so a literal `\\u2028` in a string stays as it is.
func literalSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' {
			out = append(out, b[i])
			continue
		}
		if i+5 < len(b) && string(b[i+1:i+5]) == "u202" && (b[i+5] == '8' || b[i+5] == '9') {
			if b[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, b[i])
		if i+1 < len(b) {
			i++
			out = append(out, b[i])
		}
	}
	return out
}

// load reads the file, validating its syntax. found is false for a missing file.
func (h *Handler) load() (content []byte, found bool, err error) {
	content, err = h.FS.ReadFile(h.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.log().Debug("file not found, returning empty document")
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s: %w", h.File, err)
	}
	if !gjson.ValidBytes(content) {
		return nil, false, fmt.Errorf("%s: %w", h.File, document.Malformedf("invalid JSON syntax"))
	}
	return content, true, nil
}

func (h *Handler) store(doc document.Document) error {
	data, err := Encode(doc, h.Indent)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", h.File, err)
	}
	if err := h.FS.WriteFile(h.File, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", h.File, err)
	}
	h.log().Debug("wrote json", "bytes", len(data))
	return nil
}

func (h *Handler) log() *slog.Logger {
	return logger.Named("jsonfile").With("path", h.File)
}

// IndentOf returns an indentation string of n spaces, DefaultIndent for n <= 0.
func IndentOf(n int) string {
	if n <= 0 {
		return DefaultIndent
	}
	return strings.Repeat(" ", n)
}
