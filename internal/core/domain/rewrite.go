package domain

import "time"

// RewriteOptions controls how a Rewriter copies an input file into its
// compressed output. A nil options value or zero-valued fields take
// the service defaults.
type RewriteOptions struct {
	// Compression configures the output gzip encoder.
	Compression *CompressionOptions

	// BufferSize is the initial size in bytes of the read buffer the
	// line scanner starts with. Lines longer than this grow the buffer
	// up to MaxLineSize.
	BufferSize uint32

	// MaxLineSize caps the length of a single input line in bytes.
	// Sequence lines in real FASTQ files can be very long, so the
	// default is generous. A line exceeding the cap is a read failure.
	MaxLineSize uint32

	// KeepPartial disables removal of the partially written output
	// file when the operation fails. The partial file is never valid
	// output; keeping it is only useful for debugging.
	KeepPartial bool
}

// RewriteStats summarizes one completed rewrite operation.
type RewriteStats struct {
	// Lines is the number of input lines copied to the output.
	Lines uint64

	// BytesRead is the number of uncompressed bytes consumed from the
	// input, after any transparent gzip decoding.
	BytesRead uint64

	// BytesWritten is the number of compressed bytes written to the
	// output file, including the gzip header and trailer.
	BytesWritten uint64

	// Duration is the wall-clock time the operation took.
	Duration time.Duration
}
