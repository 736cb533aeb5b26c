// Package render turns documentation units into Markdown for the docs site.
//
// Every fragment follows the same template:
//
//	### `Name`
//	!!! function "`Name`"
//		description
//		```dae
//		func void Name(var int x) {};
//		```
//
//		**Parameters**
//		- `x` - text
//
// followed by optional Globals and Return value sections.
package render

import (
	"fmt"
	"strings"

	"github.com/pablor21/daedoc/config"
	"github.com/pablor21/daedoc/logger"
	"github.com/pablor21/daedoc/types"
)

// Section labels are part of the output contract
const (
	ParametersLabel  = "Parameters"
	GlobalsLabel     = "Globals"
	ReturnValueLabel = "Return value"
)

// Options controls the Markdown template
type Options struct {
	Indent          string
	Language        string
	Admonition      string
	ReturnLeadIn    string
	SignatureParams bool
}

// DefaultOptions returns the options of the built-in configuration
func DefaultOptions() Options {
	return Options{
		Indent:     config.DefaultIndent,
		Language:   config.DefaultLanguage,
		Admonition: config.DefaultAdmonition,
	}
}

// OptionsFromConfig converts the render section of a config
func OptionsFromConfig(c config.RenderConfig) Options {
	opts := Options{
		Indent:          c.Indent,
		Language:        c.Language,
		Admonition:      c.Admonition,
		ReturnLeadIn:    c.ReturnLeadIn,
		SignatureParams: c.SignatureParams,
	}
	def := DefaultOptions()
	if opts.Indent == "" {
		opts.Indent = def.Indent
	}
	if opts.Language == "" {
		opts.Language = def.Language
	}
	if opts.Admonition == "" {
		opts.Admonition = def.Admonition
	}
	return opts
}

// Renderer renders documentation units. It holds no per-run state.
type Renderer struct {
	opts   Options
	logger logger.Logger
}

// NewRenderer creates a renderer
func NewRenderer(opts Options, log logger.Logger) *Renderer {
	if log == nil {
		log = logger.NewDiscardLogger()
	}
	return &Renderer{opts: opts, logger: log}
}

// Render renders all units in order, separated by one blank line
func (r *Renderer) Render(fns []*types.FunctionInfo) string {
	fragments := make([]string, 0, len(fns))
	for _, fn := range fns {
		fragments = append(fragments, r.RenderFunction(fn))
	}
	return strings.Join(fragments, "\n")
}

// RenderFunction renders a single unit. The result always ends with a newline.
func (r *Renderer) RenderFunction(fn *types.FunctionInfo) string {
	var md strings.Builder
	indent := r.opts.Indent

	fmt.Fprintf(&md, "### `%s`\n", fn.Name)
	fmt.Fprintf(&md, "!!! %s \"`%s`\"\n", r.opts.Admonition, fn.Name)

	if fn.HasDescription() {
		r.writeIndented(&md, fn.GetDescription())
	}

	fmt.Fprintf(&md, "%s```%s\n", indent, r.opts.Language)
	r.writeIndented(&md, fn.Declaration)
	fmt.Fprintf(&md, "%s```\n", indent)

	if params := fn.Params(); len(params) > 0 {
		r.writeHeading(&md, ParametersLabel)
		for i, p := range params {
			r.writeItem(&md, r.paramLabel(fn, i, p), p.Description)
		}
	}

	if globals := fn.Globals(); len(globals) > 0 {
		r.writeHeading(&md, GlobalsLabel)
		for _, g := range globals {
			r.writeItem(&md, g.Name, g.Description)
		}
	}

	if ret, ok := fn.Return(); ok {
		r.writeHeading(&md, ReturnValueLabel)
		text := ret.Description
		if r.opts.ReturnLeadIn != "" {
			text = r.opts.ReturnLeadIn + " " + text
		}
		r.writeIndented(&md, text)
	}

	r.logger.Debug("rendered function", "function", fn.Name, "bytes", md.Len())
	return md.String()
}

// paramLabel is the annotation name, or with SignatureParams the declaration
// signature at the same position when there is one
func (r *Renderer) paramLabel(fn *types.FunctionInfo, i int, p types.Annotation) string {
	if r.opts.SignatureParams && i < len(fn.Parameters) {
		return fmt.Sprintf("#!%s %s", r.opts.Language, fn.Parameters[i])
	}
	return p.Name
}

func (r *Renderer) writeHeading(md *strings.Builder, label string) {
	fmt.Fprintf(md, "\n%s**%s**  \n", r.opts.Indent, label)
}

func (r *Renderer) writeItem(md *strings.Builder, name, description string) {
	fmt.Fprintf(md, "%s- `%s` - %s\n", r.opts.Indent, name, description)
}

func (r *Renderer) writeIndented(md *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		md.WriteString(r.opts.Indent)
		md.WriteString(line)
		md.WriteByte('\n')
	}
}
