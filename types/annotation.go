package types

// AnnotationKind identifies which tag produced an annotation
type AnnotationKind string

const (
	AnnotationKindParam  AnnotationKind = "param"
	AnnotationKindGlobal AnnotationKind = "global"
	AnnotationKindReturn AnnotationKind = "return"
)

// Annotation represents a parsed tag line from a documentation block
// (@param name text, @global name text, @return text)
type Annotation struct {
	Kind        AnnotationKind `json:"kind"`
	Name        string         `json:"name,omitempty"` // empty for @return
	Description string         `json:"description"`
	RawText     string         `json:"-"` // original line, marker stripped
	Line        int            `json:"line"`
}

// NewParamAnnotation creates a @param annotation
func NewParamAnnotation(name, description string) Annotation {
	return Annotation{Kind: AnnotationKindParam, Name: name, Description: description}
}

// NewGlobalAnnotation creates a @global annotation
func NewGlobalAnnotation(name, description string) Annotation {
	return Annotation{Kind: AnnotationKindGlobal, Name: name, Description: description}
}

// NewReturnAnnotation creates a @return annotation
func NewReturnAnnotation(description string) Annotation {
	return Annotation{Kind: AnnotationKindReturn, Description: description}
}

// IsNamed reports whether the annotation kind carries an identifier
func (k AnnotationKind) IsNamed() bool {
	return k == AnnotationKindParam || k == AnnotationKindGlobal
}
