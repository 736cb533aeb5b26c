package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pablor21/daedoc"
	"github.com/pablor21/daedoc/config"
	"github.com/pablor21/daedoc/logger"
	"github.com/pablor21/daedoc/parser"
	"github.com/pablor21/daedoc/types"
	"github.com/spf13/cobra"
	"golang.org/x/tools/txtar"
)

// rootOptions holds the flags of the root command
type rootOptions struct {
	output     string
	configPath string
	txtar      bool
	verbosity  int
	quiet      bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "daedoc [file...]",
		Short: "Generate Markdown documentation from Daedalus doc comments",
		Long: `daedoc reads Daedalus source files, extracts the /// documentation block
above every function declaration and renders it as Markdown for the docs site.

With no files, or with "-", the source is read from stdin. Several files are
rendered in argument order into one document. Any malformed block fails the
whole run and nothing is written.

Examples:
  daedoc externals.d > externals.md
  daedoc -o docs/externals.md doc.d mdl.d
  daedoc --txtar --config daedoc.toml bundle.txtar`,
		Version:       parser.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts, args)
		},
	}

	cmd.SetVersionTemplate("daedoc version {{.Version}}\n")
	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "write Markdown to this file instead of stdout")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (.yml, .yaml, .json or .toml)")
	flags.BoolVar(&opts.txtar, "txtar", false, "treat inputs as txtar archives; every .d/.dae member is one input")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress all log output")

	cmd.AddCommand(newTagsCmd())
	return cmd
}

func runRoot(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg := config.NewDefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.LoadConfigFile(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// CLI flags > config file
	level := *cfg.LogLevel
	if opts.quiet || opts.verbosity > 0 {
		level = logger.LevelFromVerbosity(opts.verbosity, opts.quiet)
	}
	log := logger.New(cmd.ErrOrStderr(), level)

	inputs, err := readInputs(cmd.InOrStdin(), args, opts.txtar)
	if err != nil {
		return err
	}
	log.Debug("read inputs", "count", len(inputs))

	ctx := types.NewProcessContext(cfg, log)
	out, err := daedoc.ProcessAll(ctx, inputs...)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	}

	if dir := filepath.Dir(opts.output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(opts.output, []byte(out), 0644); err != nil {
		return fmt.Errorf("write file %s: %w", opts.output, err)
	}
	log.Info("generated documentation", "output", opts.output, "bytes", len(out))
	return nil
}

// readInputs returns the source text of every input, in argument order
func readInputs(stdin io.Reader, args []string, archives bool) ([]string, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	var inputs []string
	for _, arg := range args {
		var data []byte
		var err error
		if arg == "-" {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = os.ReadFile(arg)
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", arg, err)
		}

		if !archives {
			inputs = append(inputs, string(data))
			continue
		}
		for _, f := range txtar.Parse(data).Files {
			if isSourceFile(f.Name) {
				inputs = append(inputs, string(f.Data))
			}
		}
	}
	return inputs, nil
}

func isSourceFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".d", ".dae":
		return true
	}
	return false
}
