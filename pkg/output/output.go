package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/docfile/pkg/document"
	"github.com/vertti/docfile/pkg/jsonfile"
	"github.com/vertti/docfile/pkg/result"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult writes an operation result with colored status to w.
// Details are indented to line up with the name.
func PrintResult(w io.Writer, r result.Result) {
	indent := "     "
	if r.OK() {
		_, _ = fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		indent = "       "
		_, _ = fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatLabel(d))
	}
}

// PrintDocument writes doc to w in a human-readable form: text as its lines,
// JSON indented, and CSV records as "column=value" pairs, one record per line.
func PrintDocument(w io.Writer, doc document.Document, indent string) error {
	switch d := doc.(type) {
	case document.Lines:
		for _, line := range d {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	case document.Object, document.Array:
		data, err := jsonfile.Encode(d, indent)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	case document.Records:
		for _, rec := range d {
			pairs := make([]string, 0, rec.Len())
			for p := rec.Oldest(); p != nil; p = p.Next() {
				pairs = append(pairs, p.Key+"="+p.Value)
			}
			if _, err := fmt.Fprintln(w, strings.Join(pairs, ", ")); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("cannot print %T", doc)
	}
	return nil
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(s string) string {
	label, rest, ok := strings.Cut(s, ": ")
	if !ok {
		return s
	}
	return dim + label + ":" + reset + " " + rest
}
