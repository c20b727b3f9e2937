package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vertti/docfile/pkg/document"
	"github.com/vertti/docfile/pkg/jsonfile"
	"github.com/vertti/docfile/pkg/output"
	"github.com/vertti/docfile/pkg/result"
	"github.com/vertti/docfile/pkg/watch"
)

var watchFormat string

var watchCmd = &cobra.Command{
	Use:   "watch <path>",
	Short: "Print a document each time its file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchFormat, "format", "", "file format: text, json or csv (default: from extension)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := resolveFormat(path, watchFormat)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	indent := jsonfile.IndentOf(cfg.JSON.Indent)
	err = watch.Watch(ctx, newHandler(path, format), func(doc document.Document, err error) {
		if err != nil {
			r := result.New("read", path)
			output.PrintResult(out, r.FailErr(err))
			return
		}
		_, _ = fmt.Fprintln(out, "---")
		_ = output.PrintDocument(out, doc, indent)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
