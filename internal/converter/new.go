package converter

import (
	"github.com/nguyentantai21042004/transcript-flow/internal/config"
	"github.com/nguyentantai21042004/transcript-flow/internal/document"
	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implConverter struct {
	cfg    *config.Config
	writer document.Writer
	logger logger.Logger
}

// New creates a new Converter instance
func New(cfg *config.Config, w document.Writer, log logger.Logger) Converter {
	return &implConverter{
		cfg:    cfg,
		writer: w,
		logger: log,
	}
}
