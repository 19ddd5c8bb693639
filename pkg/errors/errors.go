// Package errors defines the typed failure contract of rewrite
// operations. Every I/O boundary (open input, open output, read line,
// write line) surfaces its failure as a RewriteError carrying the
// category of the boundary, so callers never have to parse messages.
package errors

import (
	"errors"
	"fmt"
	"time"

	"github.com/iamNilotpal/fqrewrite/internal/core/domain"
)

// RewriteError is the typed failure returned by rewrite operations.
// No error is retried or recovered internally; the first failure at
// any boundary aborts the operation and is surfaced as one of these.
type RewriteError struct {
	Err       error                // Underlying cause from the OS or codec.
	Operation string               // Short name of the failed step, e.g. "open", "scan", "finalize".
	Path      string               // File path involved in the failure.
	Timestamp time.Time            // When the failure occurred.
	Category  domain.ErrorCategory // Which I/O boundary failed.
}

// NewRewriteError creates a RewriteError for the given boundary.
func NewRewriteError(category domain.ErrorCategory, operation, path string, err error) *RewriteError {
	return &RewriteError{
		Err:       err,
		Path:      path,
		Operation: operation,
		Category:  category,
		Timestamp: time.Now(),
	}
}

func (e *RewriteError) Error() string {
	return fmt.Sprintf("[%v] %s %s: %v", e.Category, e.Operation, e.Path, e.Err)
}

// Unwrap exposes the underlying cause so errors.Is/As keep working
// through the typed wrapper.
func (e *RewriteError) Unwrap() error {
	return e.Err
}

// IsRewriteError checks if a given error is of type RewriteError.
func IsRewriteError(err error) bool {
	var re *RewriteError
	return errors.As(err, &re)
}

// AsRewriteError attempts to extract a RewriteError from a given error.
func AsRewriteError(err error) *RewriteError {
	var re *RewriteError
	if errors.As(err, &re) {
		return re
	}
	return nil
}

// CategoryOf returns the failed boundary's category, or zero if err is
// not a RewriteError.
func CategoryOf(err error) domain.ErrorCategory {
	if re := AsRewriteError(err); re != nil {
		return re.Category
	}
	return 0
}
