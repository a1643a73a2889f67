package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/document"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

const testVTT = `WEBVTT

00:00:00.000 --> 00:00:02.000
<v Alice>Hello
there

00:00:02.000 --> 00:00:04.000
<v Alice>again

00:00:04.000 --> 00:00:06.000
<v Bob>Hi
`

func newTestConverter(t *testing.T) (Converter, *config.Config) {
	t.Helper()

	root := t.TempDir()
	cfg := &config.Config{
		Paths: config.PathsConfig{
			Input:    filepath.Join(root, "input"),
			Output:   filepath.Join(root, "output"),
			Archived: filepath.Join(root, "archived"),
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
		t.Fatal(err)
	}

	log := logger.New("error")
	return New(cfg, document.New(cfg.Document, log), log), cfg
}

func writeCaption(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcess(t *testing.T) {
	ctx := context.Background()
	conv, cfg := newTestConverter(t)
	captionPath := writeCaption(t, cfg.Paths.Input, "standup.vtt", testVTT)

	if err := conv.Process(ctx, captionPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	wantOutput := filepath.Join(cfg.Paths.Output,
		fmt.Sprintf("standup-FORMATTED-%s.docx", time.Now().Format("2006-01-02")))
	if _, err := os.Stat(wantOutput); err != nil {
		t.Errorf("output document missing: %v", err)
	}

	// Source file is moved out of the input directory after conversion
	if _, err := os.Stat(captionPath); !os.IsNotExist(err) {
		t.Errorf("caption file still in input dir (err = %v)", err)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "standup.vtt")); err != nil {
		t.Errorf("caption file not archived: %v", err)
	}
}

func TestProcessEmptyFile(t *testing.T) {
	ctx := context.Background()
	conv, cfg := newTestConverter(t)
	captionPath := writeCaption(t, cfg.Paths.Input, "empty.vtt", "WEBVTT\n")

	// An empty caption file is reported and skipped, not an error
	if err := conv.Process(ctx, captionPath); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	entries, err := os.ReadDir(cfg.Paths.Output)
	if err == nil && len(entries) > 0 {
		t.Errorf("no document expected for empty file, found %d", len(entries))
	}
}

func TestProcessMalformedFile(t *testing.T) {
	ctx := context.Background()
	conv, cfg := newTestConverter(t)
	captionPath := writeCaption(t, cfg.Paths.Input, "broken.vtt", "not a caption file\n")

	if err := conv.Process(ctx, captionPath); err == nil {
		t.Error("Process() expected error for malformed file")
	}

	// Failed files stay in the input directory
	if _, err := os.Stat(captionPath); err != nil {
		t.Errorf("malformed file should not be archived: %v", err)
	}
}

func TestProcessExisting(t *testing.T) {
	ctx := context.Background()
	conv, cfg := newTestConverter(t)

	writeCaption(t, cfg.Paths.Input, "a.vtt", testVTT)
	writeCaption(t, cfg.Paths.Input, "b.vtt", testVTT)
	writeCaption(t, cfg.Paths.Input, "broken.vtt", "garbage\n")
	writeCaption(t, cfg.Paths.Input, "notes.txt", "ignored")

	count, err := conv.ProcessExisting(ctx)
	if err != nil {
		t.Fatalf("ProcessExisting() error = %v", err)
	}
	if count != 2 {
		t.Errorf("ProcessExisting() = %d converted, want 2", count)
	}

	docs, err := os.ReadDir(cfg.Paths.Output)
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Errorf("output dir has %d documents, want 2", len(docs))
	}
}
