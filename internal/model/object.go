package model

// Object is one object type of the schema: a named, ordered set of
// attributes. Objects are constructed by the front-end and are read-only
// inputs to the generation pipeline.
type Object struct {
	Name       string      `json:"name" yaml:"name"`
	Attributes []Attribute `json:"attributes" yaml:"attributes"`
	Docstring  string      `json:"docstring,omitempty" yaml:"docstring,omitempty"`
	// Term optionally binds the whole type to a semantic-web identifier; it is
	// appended to the emitted type-list after the canonical term.
	Term string `json:"term,omitempty" yaml:"term,omitempty"`
}

// Attribute returns the declared attribute with the given name.
func (o *Object) Attribute(name string) (*Attribute, bool) {
	for i := range o.Attributes {
		if o.Attributes[i].Name == name {
			return &o.Attributes[i], true
		}
	}
	return nil, false
}

// HasAnyTerms reports whether at least one attribute declares a term.
func (o *Object) HasAnyTerms() bool {
	for i := range o.Attributes {
		if o.Attributes[i].HasTerm() {
			return true
		}
	}
	return false
}

// RequiredFirst returns a copy of the attribute list with required,
// default-free scalar attributes hoisted to the front. Relative order within
// each group is preserved. Emitters use this for field placement; the context
// map always follows pure declaration order, so the IR itself is never
// reordered.
func (o *Object) RequiredFirst() []Attribute {
	top := make([]Attribute, 0, len(o.Attributes))
	bottom := make([]Attribute, 0, len(o.Attributes))
	for _, attr := range o.Attributes {
		if attr.Required && attr.Default == nil && !attr.Multiple {
			top = append(top, attr)
		} else {
			bottom = append(bottom, attr)
		}
	}
	return append(top, bottom...)
}
