package converter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ProcessExisting converts caption files already sitting in the input
// directory at startup. Files are processed in name order; an error on one
// file is logged and the rest continue.
func (c *implConverter) ProcessExisting(ctx context.Context) (int, error) {
	files, err := c.discoverCaptionFiles(c.cfg.Paths.Input)
	if err != nil {
		return 0, fmt.Errorf("discover caption files: %w", err)
	}

	if len(files) == 0 {
		return 0, nil
	}

	c.logger.Info(ctx, "Found %d caption files to convert", len(files))

	successCount := 0
	for i, path := range files {
		c.logger.Info(ctx, "[%d/%d] %s", i+1, len(files), filepath.Base(path))
		if err := c.Process(ctx, path); err != nil {
			c.logger.Error(ctx, "Failed to convert %s: %v", path, err)
			continue
		}
		successCount++
	}

	return successCount, nil
}

func (c *implConverter) discoverCaptionFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".vtt" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
