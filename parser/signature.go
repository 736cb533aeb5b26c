package parser

import (
	"fmt"
	"strings"

	"github.com/pablor21/daedoc/annotations"
	"github.com/pablor21/daedoc/types"
)

// Signature is the documentation-relevant part of a function declaration
type Signature struct {
	Name        string
	Parameters  []string
	Declaration string
}

const whitespace = " \t\r\n"

// ExtractSignature parses a declaration region of the form
//
//	<keyword> <return-type> <name> ( <params> )
//
// where decl excludes the terminator. The declaration text is rebuilt with
// the terminator as its only body.
func ExtractSignature(decl string, line int, terminator string) (*Signature, error) {
	text := strings.TrimSpace(decl)
	rest := text

	// keyword and return type carry no documentation value but must be present
	for _, what := range []string{"keyword", "return type"} {
		ident, after := annotations.ScanIdentifier(rest)
		if ident == "" {
			return nil, types.NewParseError(types.InvalidDeclaration, line, text,
				"expected %s identifier", what)
		}
		trimmed := strings.TrimLeft(after, whitespace)
		if len(trimmed) == len(after) {
			return nil, types.NewParseError(types.InvalidDeclaration, line, text,
				"expected whitespace after %s %q", what, ident)
		}
		rest = trimmed
	}

	name, after := annotations.ScanIdentifier(rest)
	if name == "" {
		return nil, types.NewParseError(types.InvalidDeclaration, line, text,
			"expected function name")
	}

	after = strings.TrimLeft(after, whitespace)
	list, ok := strings.CutPrefix(after, "(")
	if !ok {
		return nil, types.NewParseError(types.InvalidDeclaration, line, text,
			"expected '(' after function name %q", name)
	}

	closeIdx := strings.IndexByte(list, ')')
	if closeIdx == -1 {
		return nil, types.NewParseError(types.InvalidDeclaration, line, text,
			"parameter list of %q is not closed", name)
	}
	if trailing := strings.TrimSpace(list[closeIdx+1:]); trailing != "" {
		return nil, types.NewParseError(types.InvalidDeclaration, line, text,
			"unexpected %q after parameter list of %q", trailing, name)
	}

	params, err := splitParameters(list[:closeIdx])
	if err != nil {
		return nil, types.NewParseError(types.InvalidDeclaration, line, text,
			"function %q: %v", name, err)
	}

	return &Signature{
		Name:        name,
		Parameters:  params,
		Declaration: text + " " + terminator,
	}, nil
}

// splitParameters splits a comma separated parameter list. An empty list
// yields no parameters; an empty entry among several is an error.
func splitParameters(list string) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, nil
	}

	parts := strings.Split(list, ",")
	params := make([]string, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("parameter %d is empty", i+1)
		}
		params = append(params, part)
	}
	return params, nil
}
