package document

import (
	"context"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

// Writer renders merged transcript turns into a document file
type Writer interface {
	Write(ctx context.Context, turns []transcript.Turn, title, outputPath string) error
}
