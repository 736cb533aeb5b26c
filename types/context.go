package types

import (
	"github.com/pablor21/daedoc/config"
	"github.com/pablor21/daedoc/logger"
)

// ProcessContext carries what a single parse/render run needs
type ProcessContext struct {
	Config *config.Config
	Logger logger.Logger
}

// NewProcessContext creates a context with defaults for nil arguments
func NewProcessContext(cfg *config.Config, log logger.Logger) *ProcessContext {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if log == nil {
		log = logger.NewDiscardLogger()
	}
	return &ProcessContext{Config: cfg, Logger: log}
}
