package rewriter

import (
	"github.com/iamNilotpal/fqrewrite/internal/adapters/compression"
	"github.com/iamNilotpal/fqrewrite/internal/core/domain"
)

const (
	// Initial read-buffer size for the line scanner.
	defaultBufferSize = 64 * 1024

	// Upper bound on a single input line. Sequence lines in FASTQ
	// dumps can run very long, so the cap is generous (64 MiB).
	defaultMaxLineSize = 64 * 1024 * 1024
)

// Fills zero-valued fields with defaults. A nil options value yields
// the full default configuration.
func prepareDefaults(opts *domain.RewriteOptions) *domain.RewriteOptions {
	if opts == nil {
		opts = &domain.RewriteOptions{}
	}

	if opts.Compression == nil {
		opts.Compression = compression.DefaultOptions()
	}
	if opts.Compression.Level == 0 {
		opts.Compression.Level = compression.DefaultLevel
	}

	if opts.BufferSize == 0 {
		opts.BufferSize = defaultBufferSize
	}
	if opts.MaxLineSize == 0 {
		opts.MaxLineSize = defaultMaxLineSize
	}

	return opts
}
