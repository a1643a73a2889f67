package converter

import "context"

// Converter defines the interface for caption file conversion
type Converter interface {
	// Process converts one caption file into a formatted document.
	Process(ctx context.Context, captionPath string) error

	// ProcessExisting converts caption files already present in the input
	// directory and returns how many were converted.
	ProcessExisting(ctx context.Context) (int, error)
}
