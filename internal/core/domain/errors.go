package domain

// ErrorCategory classifies the I/O boundary at which a rewrite
// operation failed. Every failure maps to exactly one category, which
// lets callers decide how to report or react without string matching.
type ErrorCategory int

const (
	// ErrorOpenInput indicates the input file could not be opened for
	// reading: missing path, permission denied, or an OS-level open
	// failure. No output file has been created when this is returned.
	ErrorOpenInput ErrorCategory = iota + 1

	// ErrorOpenOutput indicates the output file could not be created:
	// missing parent directory, permission denied, or an OS-level
	// create failure.
	ErrorOpenOutput

	// ErrorReadLine indicates a failure reading or decoding the input
	// stream mid-transfer, such as an I/O error from the underlying
	// device or a corrupt compressed input.
	ErrorReadLine

	// ErrorWriteLine indicates a failure writing to the output stream
	// or the compression layer mid-transfer, such as a full disk. It
	// also covers failures finalizing the compressed stream's trailer.
	ErrorWriteLine
)

// String returns the string representation of the error category.
func (c ErrorCategory) String() string {
	switch c {
	case ErrorOpenInput:
		return "open-input"
	case ErrorOpenOutput:
		return "open-output"
	case ErrorReadLine:
		return "read-line"
	case ErrorWriteLine:
		return "write-line"
	default:
		return "unknown"
	}
}
