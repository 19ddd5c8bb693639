package compression

import (
	"fmt"

	"github.com/iamNilotpal/fqrewrite/internal/core/domain"
)

// Compression level constants define the trade-off between compression
// ratio and speed. Higher levels provide better compression at the cost
// of increased CPU usage and time.
const (
	FastestLevel = 1 // Optimized for speed with minimal compression
	DefaultLevel = 6 // Balanced between speed and compression ratio
	BestLevel    = 9 // Maximum compression ratio, higher CPU usage
)

// Returns CompressionOptions initialized with the balanced default
// level, matching what gzip tooling uses when no level is given.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{Level: DefaultLevel}
}

// Checks if the compression options are valid and returns an error if
// the level is outside the range gzip accepts.
func Validate(input *domain.CompressionOptions) error {
	if input.Level < FastestLevel || input.Level > BestLevel {
		return fmt.Errorf("compression level must be between %d and %d, got %d", FastestLevel, BestLevel, input.Level)
	}
	return nil
}
