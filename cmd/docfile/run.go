package main

import (
	"errors"
	"io"

	"github.com/vertti/docfile/pkg/output"
	"github.com/vertti/docfile/pkg/result"
)

// ErrOperationFailed is returned when a read, write or append fails.
var ErrOperationFailed = errors.New("operation failed")

// report prints a result and returns an error if it failed.
// The returned error causes Cobra to exit with code 1.
func report(w io.Writer, r result.Result) error {
	output.PrintResult(w, r)

	if !r.OK() {
		return ErrOperationFailed
	}
	return nil
}
