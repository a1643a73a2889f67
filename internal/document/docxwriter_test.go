package document

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
)

func TestWrite(t *testing.T) {
	ctx := context.Background()
	outputPath := filepath.Join(t.TempDir(), "out.docx")

	w := New(config.DocumentConfig{Font: "Times New Roman", FontSize: 13}, logger.New("error"))

	turns := []transcript.Turn{
		{Text: "Hello there", Start: "00:00:00.000", End: "00:00:04.000", Speaker: "A"},
		{Text: "Hi", Start: "00:00:04.000", End: "00:00:06.000", Speaker: "B"},
	}

	if err := w.Write(ctx, turns, "Meeting Transcription", outputPath); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(outputPath)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}
