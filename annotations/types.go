// Package annotations parses the comment region of a documentation block into
// a description and @param / @global / @return annotations.
package annotations

import "github.com/pablor21/daedoc/types"

// AnnotationSpec defines the grammar of one supported tag
type AnnotationSpec struct {
	// Annotation name without the @, for example: "param"
	Name string `yaml:"name" json:"name"`
	// Kind stored on parsed annotations
	Kind types.AnnotationKind `yaml:"kind" json:"kind"`
	// Named tags take an identifier before the description
	Named bool `yaml:"named" json:"named"`
	// Usage line shown in help output
	Usage string `yaml:"usage" json:"usage"`
	// Description of the annotation
	Description string `yaml:"description" json:"description"`
}

// CommentBlock is the parsed comment region of one documentation block
type CommentBlock struct {
	Description *string
	Annotations []types.Annotation
}
