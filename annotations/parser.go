package annotations

import (
	"strings"

	"github.com/pablor21/daedoc/types"
)

// Parser parses documentation comment regions
type Parser struct {
	marker string
	defs   Definitions
}

// NewParser creates a parser for comment lines starting with marker
func NewParser(marker string) *Parser {
	return &Parser{
		marker: marker,
		defs:   NewCoreDefinitions(),
	}
}

// ParseComment parses a comment region using the default "///" marker
func ParseComment(region string, firstLine int) (*CommentBlock, error) {
	return NewParser("///").ParseComment(region, firstLine)
}

// ParseComment splits a comment region into its description and annotations.
// firstLine is the input line number of the region's first line and is only
// used for diagnostics.
//
// The description is every text line before the first tag or the first blank
// comment line that follows description text. Blank comment lines are
// separators and are dropped. Any text line after that point is an error.
func (p *Parser) ParseComment(region string, firstLine int) (*CommentBlock, error) {
	block := &CommentBlock{}
	var descLines []string
	inDescription := true

	for i, raw := range strings.Split(region, "\n") {
		lineNo := firstLine + i
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		text, ok := strings.CutPrefix(line, p.marker)
		if !ok {
			return nil, types.NewParseError(types.MalformedBlock, lineNo, line,
				"expected a %s comment line", p.marker)
		}
		text = strings.TrimSpace(text)

		if text == "" {
			if len(descLines) > 0 {
				inDescription = false
			}
			continue
		}

		if spec := p.matchTag(text); spec != nil {
			inDescription = false
			ann, err := p.parseTag(spec, text, lineNo)
			if err != nil {
				return nil, err
			}
			block.Annotations = append(block.Annotations, ann)
			continue
		}

		if !inDescription {
			return nil, types.NewParseError(types.MalformedBlock, lineNo, line,
				"unexpected text after the description")
		}
		descLines = append(descLines, text)
	}

	if len(descLines) > 0 {
		desc := strings.Join(descLines, "\n")
		block.Description = &desc
	}
	return block, nil
}

// matchTag returns the spec when text starts with a known @tag keyword
// followed by whitespace or the end of the line
func (p *Parser) matchTag(text string) *AnnotationSpec {
	if !strings.HasPrefix(text, "@") {
		return nil
	}
	word, _ := cutWord(text)
	return p.defs.GetAnnotationSpecByName(word)
}

// parseTag parses a single tag line: @param name text, @global name text, @return text
func (p *Parser) parseTag(spec *AnnotationSpec, text string, lineNo int) (types.Annotation, error) {
	ann := types.Annotation{
		Kind:    spec.Kind,
		RawText: text,
		Line:    lineNo,
	}

	_, rest := cutWord(text)

	if spec.Named {
		name, desc := cutWord(rest)
		if name == "" {
			return ann, types.NewParseError(types.InvalidAnnotation, lineNo, text,
				"@%s is missing a name", spec.Name)
		}
		if !IsIdentifier(name) {
			return ann, types.NewParseError(types.InvalidAnnotation, lineNo, text,
				"@%s name %q is not an identifier", spec.Name, name)
		}
		ann.Name = name
		rest = desc
	}

	if rest == "" {
		return ann, types.NewParseError(types.InvalidAnnotation, lineNo, text,
			"@%s is missing a description", spec.Name)
	}
	ann.Description = rest
	return ann, nil
}

// Definitions returns the tag specifications the parser recognizes
func (p *Parser) Definitions() Definitions {
	return p.defs
}
