package rewriter

import (
	"fmt"

	"github.com/iamNilotpal/fqrewrite/internal/adapters/compression"
	"github.com/iamNilotpal/fqrewrite/internal/core/domain"
	"github.com/iamNilotpal/fqrewrite/pkg/errors"
)

func Validate(opts *domain.RewriteOptions) error {
	if err := compression.Validate(opts.Compression); err != nil {
		return errors.NewValidationError("compression.level", opts.Compression.Level, err)
	}

	if opts.MaxLineSize < opts.BufferSize {
		return errors.NewValidationError(
			"maxLineSize", opts.MaxLineSize,
			fmt.Errorf("max line size (%d) must be greater than or equal to buffer size (%d)",
				opts.MaxLineSize, opts.BufferSize),
		)
	}

	return nil
}
