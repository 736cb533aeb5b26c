// Package daedoc extracts documentation comments from Daedalus source text and
// renders them as Markdown.
//
// Parsing is all-or-nothing: the first malformed block aborts the run and no
// Markdown is produced.
package daedoc

import (
	"fmt"
	"os"

	"github.com/pablor21/daedoc/config"
	"github.com/pablor21/daedoc/logger"
	"github.com/pablor21/daedoc/parser"
	"github.com/pablor21/daedoc/render"
	"github.com/pablor21/daedoc/types"
)

// Process renders input with the default configuration
func Process(input string) (string, error) {
	defaultConfig := config.NewDefaultConfig()
	return ProcessWithConfig(input, defaultConfig)
}

// ProcessWithConfig renders input with the provided configuration
func ProcessWithConfig(input string, config *config.Config) (string, error) {
	return ProcessWithContext(newContext(config), input)
}

// ProcessWithContext renders input using the provided context
func ProcessWithContext(ctx *types.ProcessContext, input string) (string, error) {
	units, err := ParseWithContext(ctx, input)
	if err != nil {
		return "", err
	}
	return renderUnits(ctx, units), nil
}

// ProcessAll renders several independent inputs and concatenates the results
// in order. A failure in any input fails the whole run.
func ProcessAll(ctx *types.ProcessContext, inputs ...string) (string, error) {
	var all []*types.FunctionInfo
	for i, input := range inputs {
		units, err := ParseWithContext(ctx, input)
		if err != nil {
			return "", fmt.Errorf("input %d: %w", i+1, err)
		}
		all = append(all, units...)
	}
	return renderUnits(ctx, all), nil
}

// Parse parses input into documentation units with the default configuration
func Parse(input string) ([]*types.FunctionInfo, error) {
	return ParseWithContext(newContext(config.NewDefaultConfig()), input)
}

// ParseWithContext parses input into documentation units
func ParseWithContext(ctx *types.ProcessContext, input string) ([]*types.FunctionInfo, error) {
	units, err := parser.NewBlockParserFromContext(ctx).Parse(input)
	if err != nil {
		return nil, fmt.Errorf("failed to parse documentation: %w", err)
	}
	ctx.Logger.Debug("parsed documentation", "functions", len(units))
	return units, nil
}

func renderUnits(ctx *types.ProcessContext, units []*types.FunctionInfo) string {
	r := render.NewRenderer(render.OptionsFromConfig(ctx.Config.Render), ctx.Logger)
	return r.Render(units)
}

// newContext builds a context whose logger follows the config's log level
func newContext(cfg *config.Config) *types.ProcessContext {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	cfg.Normalize()
	return types.NewProcessContext(cfg, logger.New(os.Stderr, *cfg.LogLevel))
}
