package types

import (
	"errors"
	"fmt"
)

// ErrorKind represents stable codes for every parse failure
type ErrorKind string

const (
	// MalformedBlock indicates the remaining input is not a complete documentation block
	MalformedBlock ErrorKind = "MALFORMED_BLOCK"
	// InvalidAnnotation indicates a tag line that does not match its grammar
	InvalidAnnotation ErrorKind = "INVALID_ANNOTATION"
	// InvalidDeclaration indicates a function declaration that cannot be parsed
	InvalidDeclaration ErrorKind = "INVALID_DECLARATION"
)

// Sentinels for errors.Is; matching is by kind only.
var (
	ErrMalformedBlock     = &ParseError{Kind: MalformedBlock, Message: "malformed documentation block"}
	ErrInvalidAnnotation  = &ParseError{Kind: InvalidAnnotation, Message: "invalid annotation"}
	ErrInvalidDeclaration = &ParseError{Kind: InvalidDeclaration, Message: "invalid declaration"}
)

// maxContext limits how much offending text is echoed in Error()
const maxContext = 80

// ParseError is the single error type produced by the parsing pipeline
type ParseError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Text    string    `json:"text"`           // offending input fragment
	Line    int       `json:"line,omitempty"` // 1-based, 0 when unknown
}

// NewParseError creates a new ParseError
func NewParseError(kind ErrorKind, line int, text, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Text:    text,
		Line:    line,
	}
}

// Error implements the error interface
func (e *ParseError) Error() string {
	text := e.Text
	if len(text) > maxContext {
		text = text[:maxContext] + "..."
	}
	if e.Line > 0 {
		return fmt.Sprintf("[%s] line %d: %s: %q", e.Kind, e.Line, e.Message, text)
	}
	return fmt.Sprintf("[%s] %s: %q", e.Kind, e.Message, text)
}

// Is matches any ParseError with the same kind
func (e *ParseError) Is(target error) bool {
	var pe *ParseError
	if !errors.As(target, &pe) {
		return false
	}
	return pe.Kind == e.Kind
}

// KindOf returns the kind of the first ParseError in err's chain
func KindOf(err error) (ErrorKind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return "", false
}
