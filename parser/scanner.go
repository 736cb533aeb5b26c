package parser

import (
	"io"
	"iter"
	"strings"

	"github.com/pablor21/daedoc/types"
)

// RawBlock is one documentation block as found in the input, before parsing
type RawBlock struct {
	// Comment is the run of marker-prefixed comment lines
	Comment string
	// Declaration is the text between the comment run and the terminator
	Declaration string
	// Line is the 1-based input line where Comment starts
	Line int
	// DeclarationLine is the 1-based input line where Declaration starts
	DeclarationLine int
}

// Scanner splits source text into raw documentation blocks.
// A scanner is single-use; once it returns an error it keeps returning it.
type Scanner struct {
	input      string
	pos        int
	line       int
	marker     string
	terminator string
	err        error
}

// NewScanner creates a scanner over input. CRLF line endings are normalized.
func NewScanner(input, marker, terminator string) *Scanner {
	return &Scanner{
		input:      strings.ReplaceAll(input, "\r\n", "\n"),
		line:       1,
		marker:     marker,
		terminator: terminator,
	}
}

// Next returns the next raw block, or io.EOF once only whitespace is left
func (s *Scanner) Next() (RawBlock, error) {
	if s.err != nil {
		return RawBlock{}, s.err
	}

	s.skipWhitespace()
	if s.pos >= len(s.input) {
		s.err = io.EOF
		return RawBlock{}, s.err
	}

	rest := s.input[s.pos:]
	if !strings.HasPrefix(rest, s.marker) {
		return s.fail(types.NewParseError(types.MalformedBlock, s.line, rest,
			"expected a %s documentation comment", s.marker))
	}

	block := RawBlock{Line: s.line}

	// comment run: marker lines and whitespace-only lines
	commentEnd := s.pos
	line := s.line
	for commentEnd < len(s.input) {
		lineEnd := strings.IndexByte(s.input[commentEnd:], '\n')
		var text string
		if lineEnd == -1 {
			text = s.input[commentEnd:]
		} else {
			text = s.input[commentEnd : commentEnd+lineEnd]
		}
		trimmed := strings.TrimSpace(text)
		if trimmed != "" && !strings.HasPrefix(trimmed, s.marker) {
			break
		}
		if lineEnd == -1 {
			commentEnd = len(s.input)
			break
		}
		commentEnd += lineEnd + 1
		line++
	}

	if commentEnd >= len(s.input) {
		return s.fail(types.NewParseError(types.MalformedBlock, s.line, rest,
			"documentation comment is not followed by a declaration"))
	}

	block.Comment = s.input[s.pos:commentEnd]
	block.DeclarationLine = line

	declRest := s.input[commentEnd:]
	termIdx := strings.Index(declRest, s.terminator)
	if termIdx == -1 {
		return s.fail(types.NewParseError(types.MalformedBlock, line, declRest,
			"declaration is not terminated by %q", s.terminator))
	}
	block.Declaration = declRest[:termIdx]

	end := commentEnd + termIdx + len(s.terminator)
	s.line += strings.Count(s.input[s.pos:end], "\n")
	s.pos = end
	return block, nil
}

// All yields every block in order. Iteration stops after the first error,
// which is yielded with a zero RawBlock.
func (s *Scanner) All() iter.Seq2[RawBlock, error] {
	return func(yield func(RawBlock, error) bool) {
		for {
			block, err := s.Next()
			if err == io.EOF {
				return
			}
			if !yield(block, err) || err != nil {
				return
			}
		}
	}
}

func (s *Scanner) skipWhitespace() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case '\n':
			s.line++
		case ' ', '\t', '\r', '\f', '\v':
		default:
			return
		}
		s.pos++
	}
}

func (s *Scanner) fail(err *types.ParseError) (RawBlock, error) {
	s.err = err
	return RawBlock{}, err
}
