package document

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implWriter struct {
	fontName string
	fontSize uint64
	logger   logger.Logger
}

// New creates a Writer that renders docx files with the configured font.
func New(cfg config.DocumentConfig, log logger.Logger) Writer {
	return &implWriter{
		fontName: cfg.Font,
		fontSize: uint64(cfg.FontSize),
		logger:   log,
	}
}
