package document

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned when a document does not have the shape the
// handler needs, either on the way in (write/append) or out (read).
var ErrMalformedInput = errors.New("malformed input")

// Malformedf returns an error wrapping ErrMalformedInput.
func Malformedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...))
}

// UnexpectedDocument reports a document variant the handler does not accept.
func UnexpectedDocument(f Format, doc Document) error {
	return Malformedf("%s handler cannot take %T", f, doc)
}
