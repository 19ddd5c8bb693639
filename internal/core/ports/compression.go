package ports

import "io"

// CompressionPort defines the interface for streaming compression.
// This allows us to swap the codec implementation without changing
// core logic, even though the wire format is fixed to gzip.
type CompressionPort interface {
	// NewWriter wraps w in a compressing stream. Bytes written to the
	// returned writer are compressed and passed to w. Close must be
	// called to flush buffered data and finalize the stream trailer;
	// it does not close w.
	NewWriter(w io.Writer) (io.WriteCloser, error)

	// NewReader wraps r, which must carry a valid compressed stream,
	// in a decompressing reader. Close releases decoder resources; it
	// does not close r.
	NewReader(r io.Reader) (io.ReadCloser, error)

	// Level returns the configured compression level.
	Level() int
}
