package errors

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/iamNilotpal/fqrewrite/internal/core/domain"
)

func TestRewriteErrorUnwrap(t *testing.T) {
	re := NewRewriteError(domain.ErrorOpenInput, "open", "/tmp/in.fastq", os.ErrNotExist)

	if !errors.Is(re, os.ErrNotExist) {
		t.Fatalf("expected wrapped cause to be reachable via errors.Is")
	}
	if re.Category != domain.ErrorOpenInput {
		t.Fatalf("unexpected category %v", re.Category)
	}
}

func TestAsRewriteErrorThroughWrapping(t *testing.T) {
	re := NewRewriteError(domain.ErrorWriteLine, "finalize", "/tmp/out.gz", errors.New("disk full"))
	wrapped := fmt.Errorf("batch item 3: %w", re)

	if !IsRewriteError(wrapped) {
		t.Fatalf("expected IsRewriteError to see through wrapping")
	}
	got := AsRewriteError(wrapped)
	if got == nil || got.Operation != "finalize" {
		t.Fatalf("expected extracted error with operation finalize, got %+v", got)
	}
	if CategoryOf(wrapped) != domain.ErrorWriteLine {
		t.Fatalf("unexpected category %v", CategoryOf(wrapped))
	}
}

func TestCategoryOfPlainError(t *testing.T) {
	if got := CategoryOf(errors.New("plain")); got != 0 {
		t.Fatalf("expected zero category for plain error, got %v", got)
	}
}

func TestCategoryStrings(t *testing.T) {
	cases := map[domain.ErrorCategory]string{
		domain.ErrorOpenInput:  "open-input",
		domain.ErrorOpenOutput: "open-output",
		domain.ErrorReadLine:   "read-line",
		domain.ErrorWriteLine:  "write-line",
		domain.ErrorCategory(0): "unknown",
	}
	for cat, want := range cases {
		if got := cat.String(); got != want {
			t.Fatalf("category %d: got %q, want %q", cat, got, want)
		}
	}
}

func TestValidationError(t *testing.T) {
	ve := NewValidationError("compression.level", 42, errors.New("out of range"))
	wrapped := fmt.Errorf("new rewriter: %w", ve)

	if !IsValidationError(wrapped) {
		t.Fatalf("expected IsValidationError to see through wrapping")
	}
	if got := AsValidationError(wrapped); got == nil || got.Field != "compression.level" {
		t.Fatalf("expected extracted validation error, got %+v", got)
	}
}
