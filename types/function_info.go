package types

// FunctionInfo is a documentation unit: one documented function declaration
// together with the annotations found in the comment block above it.
type FunctionInfo struct {
	// Name is the function identifier taken from the declaration
	Name string `json:"name"`
	// Description is nil when the block carries no description text
	Description *string `json:"description,omitempty"`
	// Annotations in source order
	Annotations []Annotation `json:"annotations"`
	// Parameters holds the raw "type name" spans from the declaration
	Parameters []string `json:"parameters"`
	// Declaration is the signature with its body normalized to an empty body
	Declaration string `json:"declaration"`
	// Line is the 1-based line of the first comment line of the block
	Line int `json:"line"`
}

// NewFunctionInfo builds a unit. The slices are copied so the unit stays
// immutable once handed to the renderer.
func NewFunctionInfo(name string, description *string, anns []Annotation, params []string, declaration string, line int) *FunctionInfo {
	return &FunctionInfo{
		Name:        name,
		Description: description,
		Annotations: append([]Annotation(nil), anns...),
		Parameters:  append([]string(nil), params...),
		Declaration: declaration,
		Line:        line,
	}
}

// HasDescription reports whether a description is present
func (f *FunctionInfo) HasDescription() bool {
	return f.Description != nil
}

// GetDescription returns the description or an empty string
func (f *FunctionInfo) GetDescription() string {
	if f.Description == nil {
		return ""
	}
	return *f.Description
}

// Params returns the @param annotations in source order
func (f *FunctionInfo) Params() []Annotation {
	return f.annotationsOfKind(AnnotationKindParam)
}

// Globals returns the @global annotations in source order
func (f *FunctionInfo) Globals() []Annotation {
	return f.annotationsOfKind(AnnotationKindGlobal)
}

// Return returns the first @return annotation. Later ones are ignored.
func (f *FunctionInfo) Return() (Annotation, bool) {
	for _, ann := range f.Annotations {
		if ann.Kind == AnnotationKindReturn {
			return ann, true
		}
	}
	return Annotation{}, false
}

func (f *FunctionInfo) annotationsOfKind(kind AnnotationKind) []Annotation {
	var out []Annotation
	for _, ann := range f.Annotations {
		if ann.Kind == kind {
			out = append(out, ann)
		}
	}
	return out
}
