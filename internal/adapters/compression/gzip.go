// Package compression provides the gzip codec behind the rewriter's
// compression port. Output streams are RFC 1952 containers produced
// incrementally, so arbitrarily large files never need to fit in
// memory.
package compression

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/iamNilotpal/fqrewrite/internal/core/domain"
)

// GzipCompression implements CompressionPort using the gzip algorithm.
// The adapter itself is stateless apart from the configured level, so a
// single instance can safely serve concurrent rewrites; each call hands
// out an independent encoder or decoder.
type GzipCompression struct {
	level int
}

// NewGzipCompression creates a gzip compression instance with the
// given options. The compression level must be between FastestLevel (1)
// and BestLevel (9).
func NewGzipCompression(opts *domain.CompressionOptions) (*GzipCompression, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := Validate(opts); err != nil {
		return nil, err
	}
	return &GzipCompression{level: opts.Level}, nil
}

// NewWriter wraps w in a gzip encoder at the configured level. Closing
// the returned writer flushes pending blocks and writes the gzip
// trailer; the underlying writer is left open.
func (g *GzipCompression) NewWriter(w io.Writer) (io.WriteCloser, error) {
	zw, err := gzip.NewWriterLevel(w, g.level)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}
	return zw, nil
}

// NewReader wraps r in a gzip decoder. Returns an error if r does not
// begin with a valid gzip header.
func (g *GzipCompression) NewReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	return zr, nil
}

// Level returns the configured compression level.
func (g *GzipCompression) Level() int {
	return g.level
}
