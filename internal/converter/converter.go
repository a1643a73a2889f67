package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/transcript-flow/internal/transcript"
	"github.com/nguyentantai21042004/transcript-flow/pkg/vtt"
)

// Process converts one caption file: parse, normalize, merge consecutive
// same-speaker cues into turns, render the document, then archive the
// source file. Each file is fully isolated; a failure here never affects
// other files in a batch.
func (c *implConverter) Process(ctx context.Context, captionPath string) error {
	startTime := time.Now()
	filename := filepath.Base(captionPath)

	c.logger.Info(ctx, "Converting caption file: %s", captionPath)

	cues, err := vtt.ParseFile(captionPath)
	if err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}

	if len(cues) == 0 {
		// No document for an empty file, but not a pipeline failure either
		c.logger.Warn(ctx, "Skipping %s: file contains no captions", filename)
		return nil
	}

	entries := make([]transcript.Entry, len(cues))
	for i, cue := range cues {
		entries[i] = transcript.Entry{
			Start:   cue.Start,
			End:     cue.End,
			Speaker: cue.Speaker,
			Text:    cue.Text,
		}
	}

	turns, err := transcript.Merge(transcript.Normalize(entries))
	if err != nil {
		return fmt.Errorf("merge %s: %w", filename, err)
	}

	outputPath := c.outputPath(captionPath)
	if err := os.MkdirAll(c.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := c.writer.Write(ctx, turns, c.cfg.Document.Title, outputPath); err != nil {
		return fmt.Errorf("write document for %s: %w", filename, err)
	}

	if err := c.moveToArchived(ctx, captionPath); err != nil {
		c.logger.Warn(ctx, "Failed to archive %s: %v", captionPath, err)
	}

	c.logger.Info(ctx, "Converted %s -> %s (%d cues, %d turns, %s)",
		filename, outputPath, len(cues), len(turns), time.Since(startTime))
	return nil
}

// outputPath derives the document name from the caption filename plus a
// formatting marker and the current date, e.g. "standup-FORMATTED-2026-08-30.docx".
func (c *implConverter) outputPath(captionPath string) string {
	base := strings.TrimSuffix(filepath.Base(captionPath), filepath.Ext(captionPath))
	name := fmt.Sprintf("%s-FORMATTED-%s.docx", base, time.Now().Format("2006-01-02"))
	return filepath.Join(c.cfg.Paths.Output, name)
}

// moveToArchived moves a converted caption file out of the input directory
// so it won't be picked up again
func (c *implConverter) moveToArchived(ctx context.Context, captionPath string) error {
	if err := os.MkdirAll(c.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	destPath := filepath.Join(c.cfg.Paths.Archived, filepath.Base(captionPath))
	if err := os.Rename(captionPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}

	c.logger.Debug(ctx, "Archived: %s -> %s", captionPath, destPath)
	return nil
}
