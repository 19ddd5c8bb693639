package domain

// CompressionOptions configures the gzip encoder used for output
// files. The codec is fixed (RFC 1952 gzip, DEFLATE); only the
// speed/ratio trade-off is tunable.
type CompressionOptions struct {
	// Level defines the gzip compression level.
	// Supported levels:
	//   - 1 (FastestLevel): fastest compression, largest output
	//   - 6 (DefaultLevel): balanced speed and ratio, used when unset
	//   - 9 (BestLevel): best ratio, highest CPU cost
	// Any value in 1..9 is accepted.
	Level int
}
