package main

import (
	"os"

	"github.com/pablor21/daedoc/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.New(os.Stderr, logger.LogLevelError).Error("daedoc failed", "error", err)
		os.Exit(1)
	}
}
