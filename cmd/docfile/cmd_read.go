package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vertti/docfile/pkg/jsonfile"
	"github.com/vertti/docfile/pkg/output"
	"github.com/vertti/docfile/pkg/result"
)

var (
	readFormat string
	readKey    string
)

var readCmd = &cobra.Command{
	Use:   "read <path>",
	Short: "Print the document stored in a file",
	Long: `Print the document stored in a text, JSON or CSV file.
A missing file prints an empty document.

Examples:
  docfile read notes.txt
  docfile read config.json --key database.host
  docfile read --format csv export.dat`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	readCmd.Flags().StringVar(&readFormat, "format", "", "file format: text, json or csv (default: from extension)")
	readCmd.Flags().StringVar(&readKey, "key", "", "print only the value at this key (JSON, dot notation for nested)")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	path := args[0]
	r := result.New("read", path)

	format, err := resolveFormat(path, readFormat)
	if err != nil {
		return err
	}
	h := newHandler(path, format)

	if readKey != "" {
		jh, ok := h.(*jsonfile.Handler)
		if !ok {
			return fmt.Errorf("--key requires JSON format, got %s", format)
		}
		value, err := jh.Lookup(readKey)
		if err != nil {
			return report(cmd.OutOrStdout(), r.FailErr(err))
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	doc, err := h.Read()
	if err != nil {
		return report(cmd.OutOrStdout(), r.FailErr(err))
	}
	return output.PrintDocument(cmd.OutOrStdout(), doc, jsonfile.IndentOf(cfg.JSON.Indent))
}
