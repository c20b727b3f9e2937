package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/vertti/docfile/pkg/document"
	"github.com/vertti/docfile/pkg/jsonfile"
)

// readData returns the --data value, or the --data-file content ("-" is stdin).
func readData(stdin io.Reader, data, dataFile string) (string, error) {
	if dataFile == "" {
		return data, nil
	}
	var (
		content []byte
		err     error
	)
	if dataFile == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(dataFile) //nolint:gosec // intentional: path from user flag
	}
	if err != nil {
		return "", fmt.Errorf("failed to read data: %w", err)
	}
	return string(content), nil
}

// decodeInput turns command-line input into a document for format.
//
//	text: one line per positional value, or data split on newlines
//	json: data is a JSON object or array
//	csv:  data is a JSON array of flat objects, key order giving column order
func decodeInput(format document.Format, data string, lines []string) (document.Document, error) {
	switch format {
	case document.FormatText:
		if lines != nil {
			return document.Lines(lines), nil
		}
		data = strings.TrimSuffix(strings.ReplaceAll(data, "\r\n", "\n"), "\n")
		return document.Lines(strings.Split(data, "\n")), nil
	case document.FormatJSON:
		return decodeJSON(data)
	case document.FormatCSV:
		return decodeRecords(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func decodeJSON(data string) (document.Document, error) {
	return jsonfile.Decode([]byte(data))
}

func decodeRecords(data string) (document.Document, error) {
	if !gjson.Valid(data) {
		return nil, document.Malformedf("invalid JSON syntax")
	}
	root := gjson.Parse(data)
	if !root.IsArray() {
		return nil, document.Malformedf("CSV input must be a JSON array of objects")
	}

	records := document.Records{}
	var err error
	root.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			err = document.Malformedf("record %d is not an object", len(records))
			return false
		}
		rec := document.NewRecord()
		item.ForEach(func(key, value gjson.Result) bool {
			if value.IsObject() || value.IsArray() {
				err = document.Malformedf("record %d column %q must be a scalar", len(records), key.String())
				return false
			}
			v := value.String()
			if value.Type == gjson.Null {
				v = ""
			}
			rec.Set(key.String(), v)
			return true
		})
		if err != nil {
			return false
		}
		records = append(records, rec)
		return true
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
