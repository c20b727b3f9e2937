package main

import (
	"github.com/vertti/docfile/pkg/csvfile"
	"github.com/vertti/docfile/pkg/document"
	"github.com/vertti/docfile/pkg/jsonfile"
	"github.com/vertti/docfile/pkg/textfile"
)

// resolveFormat uses the --format value when given, else the file extension.
func resolveFormat(path, name string) (document.Format, error) {
	if name != "" {
		return document.ParseFormat(name)
	}
	return document.DetectFormat(path)
}

// newHandler builds the handler for path, configured from cfg.
func newHandler(path string, format document.Format) document.Handler {
	switch format {
	case document.FormatJSON:
		h := jsonfile.New(path)
		h.Indent = jsonfile.IndentOf(cfg.JSON.Indent)
		return h
	case document.FormatCSV:
		h := csvfile.New(path)
		h.Comma = cfg.comma()
		return h
	default:
		return textfile.New(path)
	}
}
