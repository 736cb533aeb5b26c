package parser

import (
	"github.com/pablor21/daedoc/annotations"
	"github.com/pablor21/daedoc/config"
	"github.com/pablor21/daedoc/logger"
	"github.com/pablor21/daedoc/types"
)

// BlockParser turns raw blocks into documentation units
type BlockParser struct {
	comments   *annotations.Parser
	marker     string
	terminator string
	logger     logger.Logger
}

// NewBlockParser creates a parser for the given grammar markers
func NewBlockParser(cfg config.ParsingConfig, log logger.Logger) *BlockParser {
	if cfg.CommentMarker == "" {
		cfg.CommentMarker = config.DefaultCommentMarker
	}
	if cfg.Terminator == "" {
		cfg.Terminator = config.DefaultTerminator
	}
	if log == nil {
		log = logger.NewDiscardLogger()
	}
	return &BlockParser{
		comments:   annotations.NewParser(cfg.CommentMarker),
		marker:     cfg.CommentMarker,
		terminator: cfg.Terminator,
		logger:     log,
	}
}

// NewBlockParserFromContext creates a parser from a process context
func NewBlockParserFromContext(ctx *types.ProcessContext) *BlockParser {
	return NewBlockParser(ctx.Config.Parsing, ctx.Logger)
}

// Scanner returns a block scanner over input using this parser's markers
func (p *BlockParser) Scanner(input string) *Scanner {
	return NewScanner(input, p.marker, p.terminator)
}

// ParseBlock couples the comment region and declaration of one raw block
func (p *BlockParser) ParseBlock(raw RawBlock) (*types.FunctionInfo, error) {
	comment, err := p.comments.ParseComment(raw.Comment, raw.Line)
	if err != nil {
		return nil, err
	}

	sig, err := ExtractSignature(raw.Declaration, raw.DeclarationLine, p.terminator)
	if err != nil {
		return nil, err
	}

	fn := types.NewFunctionInfo(sig.Name, comment.Description, comment.Annotations, sig.Parameters, sig.Declaration, raw.Line)
	p.logger.Debug("parsed documentation block",
		"function", fn.Name,
		"line", fn.Line,
		"annotations", len(fn.Annotations),
		"parameters", len(fn.Parameters))
	return fn, nil
}

// Parse parses every block in input. The first failure aborts the run and no
// units are returned.
func (p *BlockParser) Parse(input string) ([]*types.FunctionInfo, error) {
	var units []*types.FunctionInfo
	for raw, err := range p.Scanner(input).All() {
		if err != nil {
			return nil, err
		}
		fn, err := p.ParseBlock(raw)
		if err != nil {
			return nil, err
		}
		units = append(units, fn)
	}
	return units, nil
}
