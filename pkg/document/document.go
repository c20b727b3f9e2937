// Package document defines the read/write/append contract shared by every
// file format handler, and the in-memory documents those handlers exchange.
package document

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Handler is implemented by all format handlers.
// Each handler is bound to a single file path; every call opens the file,
// performs one full read or write, and closes it before returning.
//
// Implementations:
//   - textfile.Handler: line-oriented text
//   - jsonfile.Handler: a single JSON object (or array)
//   - csvfile.Handler: header row plus records
type Handler interface {
	// Read returns the decoded content. A missing file yields the empty
	// document of the handler's shape, not an error.
	Read() (Document, error)
	// Write replaces the file content with the encoding of doc.
	Write(doc Document) error
	// Append adds doc to the existing content.
	Append(doc Document) error
	Path() string
	Format() Format
}

// Document is the decoded content of a file.
// The set of documents is closed: Lines, Object, Array and Records.
type Document interface {
	isDocument()
}

// Lines is a text document, one element per line.
type Lines []string

// Object is a JSON document whose root is an object.
type Object map[string]any

// Array is a JSON document whose root is an array.
type Array []any

// Record is one CSV row keyed by column name, in column order.
type Record = *orderedmap.OrderedMap[string, string]

// Records is a tabular document.
type Records []Record

func (Lines) isDocument()   {}
func (Object) isDocument()  {}
func (Array) isDocument()   {}
func (Records) isDocument() {}

// NewRecord builds a Record from alternating column, value pairs.
// A trailing column without a value gets the empty string.
func NewRecord(pairs ...string) Record {
	r := orderedmap.New[string, string](len(pairs)/2 + 1)
	for i := 0; i < len(pairs); i += 2 {
		v := ""
		if i+1 < len(pairs) {
			v = pairs[i+1]
		}
		r.Set(pairs[i], v)
	}
	return r
}

// Columns returns the record's column names in order.
func Columns(r Record) []string {
	cols := make([]string, 0, r.Len())
	for p := r.Oldest(); p != nil; p = p.Next() {
		cols = append(cols, p.Key)
	}
	return cols
}

// Values returns the record's values in column order.
func Values(r Record) []string {
	vals := make([]string, 0, r.Len())
	for p := r.Oldest(); p != nil; p = p.Next() {
		vals = append(vals, p.Value)
	}
	return vals
}

// Len reports the number of top-level elements of doc.
func Len(doc Document) int {
	switch d := doc.(type) {
	case Lines:
		return len(d)
	case Object:
		return len(d)
	case Array:
		return len(d)
	case Records:
		return len(d)
	default:
		return 0
	}
}
