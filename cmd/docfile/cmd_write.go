package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/docfile/pkg/document"
	"github.com/vertti/docfile/pkg/result"
)

// writeFlags holds the flags shared by write and append.
type writeFlags struct {
	format   string
	data     string
	dataFile string
}

var (
	writeOpts  writeFlags
	appendOpts writeFlags
)

var writeCmd = &cobra.Command{
	Use:   "write <path> [lines...]",
	Short: "Replace a file's content with a document",
	Long: `Replace a file's content with a document.

Text takes one line per argument, or --data split on newlines.
JSON takes an object or array in --data.
CSV takes a JSON array of flat objects in --data; the first object's keys
become the header. An empty array leaves the file untouched.

Examples:
  docfile write notes.txt Hello World
  docfile write config.json --data '{"name": "John", "age": 30}'
  docfile write people.csv --data-file people.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWrite(cmd, args, "write", writeOpts)
	},
}

var appendCmd = &cobra.Command{
	Use:   "append <path> [lines...]",
	Short: "Add a document to the end of a file",
	Long: `Add a document to the end of a file.

Text is written after a newline, which is always added first.
JSON objects are merged into the stored object; incoming keys win.
CSV records are added without a header and are not checked against
the existing header.

Examples:
  docfile append notes.txt Goodbye World
  docfile append config.json --data '{"city": "New York"}'
  echo '[{"name":"Cid","age":"22"}]' | docfile append people.csv --data-file -`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWrite(cmd, args, "append", appendOpts)
	},
}

func init() {
	for _, c := range []struct {
		cmd  *cobra.Command
		opts *writeFlags
	}{{writeCmd, &writeOpts}, {appendCmd, &appendOpts}} {
		c.cmd.Flags().StringVar(&c.opts.format, "format", "", "file format: text, json or csv (default: from extension)")
		c.cmd.Flags().StringVar(&c.opts.data, "data", "", "document to write")
		c.cmd.Flags().StringVar(&c.opts.dataFile, "data-file", "", "read the document from this file (- for stdin)")
		rootCmd.AddCommand(c.cmd)
	}
}

func runWrite(cmd *cobra.Command, args []string, op string, opts writeFlags) error {
	path, lines := args[0], args[1:]

	format, err := resolveFormat(path, opts.format)
	if err != nil {
		return err
	}
	if err := requireExactlyOne(
		flagSet{"--data", cmd.Flags().Changed("data")},
		flagSet{"--data-file", opts.dataFile != ""},
		flagSet{"lines", len(lines) > 0},
	); err != nil {
		return err
	}

	r := result.New(op, path)
	r.AddDetailf("format: %s", format)

	data, err := readData(cmd.InOrStdin(), opts.data, opts.dataFile)
	if err != nil {
		return report(cmd.OutOrStdout(), r.FailErr(err))
	}
	if len(lines) == 0 {
		lines = nil
	} else if format != document.FormatText {
		return report(cmd.OutOrStdout(), r.Failf("positional lines are only accepted for text, use --data"))
	}

	doc, err := decodeInput(format, data, lines)
	if err != nil {
		return report(cmd.OutOrStdout(), r.FailErr(err))
	}

	h := newHandler(path, format)
	if op == "append" {
		err = h.Append(doc)
	} else {
		err = h.Write(doc)
	}
	if err != nil {
		return report(cmd.OutOrStdout(), r.FailErr(err))
	}

	r.AddDetailf("%s: %d", unit(doc), document.Len(doc))
	return report(cmd.OutOrStdout(), r.Succeed())
}

// unit names the elements counted by document.Len.
func unit(doc document.Document) string {
	switch doc.(type) {
	case document.Lines:
		return "lines"
	case document.Object:
		return "keys"
	case document.Records:
		return "records"
	default:
		return "items"
	}
}
