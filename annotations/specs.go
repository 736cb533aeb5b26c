package annotations

import (
	"strings"

	"github.com/pablor21/daedoc/types"
)

// Definitions contains the annotation specifications known to a parser
type Definitions struct {
	Annotations []AnnotationSpec `json:"annotations"`
}

// NewCoreDefinitions returns the definitions for the built-in tags
func NewCoreDefinitions() Definitions {
	return Definitions{Annotations: GetCoreAnnotations()}
}

// GetAnnotationSpecByName finds an annotation specification by name
func (d Definitions) GetAnnotationSpecByName(name string) *AnnotationSpec {
	name = NormalizeAnnotationName(name)
	for i := range d.Annotations {
		if NormalizeAnnotationName(d.Annotations[i].Name) == name {
			return &d.Annotations[i]
		}
	}
	return nil
}

// GetCoreAnnotations returns the tags understood in documentation blocks
func GetCoreAnnotations() []AnnotationSpec {
	return []AnnotationSpec{
		{
			Name:        "param",
			Kind:        types.AnnotationKindParam,
			Named:       true,
			Usage:       "@param <name> <description>",
			Description: "Documents a function parameter. Rendered under \"Parameters\" in source order.",
		},
		{
			Name:        "global",
			Kind:        types.AnnotationKindGlobal,
			Named:       true,
			Usage:       "@global <name> <description>",
			Description: "Documents a global symbol the function reads or writes. Rendered under \"Globals\" in source order.",
		},
		{
			Name:        "return",
			Kind:        types.AnnotationKindReturn,
			Usage:       "@return <description>",
			Description: "Documents the return value. Only the first @return of a block is rendered.",
		},
	}
}

// NormalizeAnnotationName normalizes annotation names for comparison (case-insensitive)
func NormalizeAnnotationName(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(name), "@")))
}
