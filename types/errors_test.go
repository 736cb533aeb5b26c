package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseErrorIs(t *testing.T) {
	err := NewParseError(InvalidDeclaration, 4, "void F()", "expected function name")
	wrapped := fmt.Errorf("failed to parse documentation: %w", err)

	if !errors.Is(wrapped, ErrInvalidDeclaration) {
		t.Error("wrapped error should match ErrInvalidDeclaration")
	}
	if errors.Is(wrapped, ErrMalformedBlock) || errors.Is(wrapped, ErrInvalidAnnotation) {
		t.Error("wrapped error matched the wrong kind")
	}
	if errors.Is(wrapped, errors.New("other")) {
		t.Error("matched a foreign error")
	}

	kind, ok := KindOf(wrapped)
	if !ok || kind != InvalidDeclaration {
		t.Errorf("KindOf() = %s, %v", kind, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf() found a kind on a plain error")
	}
}

func TestParseErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "with line",
			err:  NewParseError(InvalidAnnotation, 3, "@param x", "@%s is missing a description", "param"),
			want: `[INVALID_ANNOTATION] line 3: @param is missing a description: "@param x"`,
		},
		{
			name: "without line",
			err:  NewParseError(MalformedBlock, 0, "foo", "expected a comment"),
			want: `[MALFORMED_BLOCK] expected a comment: "foo"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %s, want %s", got, tt.want)
			}
		})
	}

	long := NewParseError(MalformedBlock, 1, strings.Repeat("x", 200), "too long")
	if msg := long.Error(); strings.Count(msg, "x") != maxContext || !strings.Contains(msg, "...") {
		t.Errorf("context not truncated: %s", msg)
	}
	if len(long.Text) != 200 {
		t.Error("Text must keep the full offending input")
	}
}
