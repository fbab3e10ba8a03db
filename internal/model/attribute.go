package model

// Attribute describes one declared field of an object type.
//
// The order in which attributes appear on an Object is significant: it fixes
// emitted field order, constructor order and context-map iteration order.
type Attribute struct {
	// Name is unique within the owning object and must not collide with the
	// reserved semantic field names.
	Name string `json:"name" yaml:"name"`
	// Multiple marks the attribute as an ordered collection.
	Multiple bool `json:"multiple" yaml:"multiple"`
	// IsID marks the attribute term as an identifier reference; its context
	// entry is emitted in the structured {"@id": ..., "@type": "@id"} form.
	IsID bool `json:"is_id,omitempty" yaml:"is_id,omitempty"`
	// DTypes holds the union alternatives of the attribute type in declared
	// order. A single entry is the common case.
	DTypes    []string `json:"dtypes" yaml:"dtypes"`
	Docstring string   `json:"docstring,omitempty" yaml:"docstring,omitempty"`
	// Term binds the attribute to a semantic-web identifier.
	Term     string   `json:"term,omitempty" yaml:"term,omitempty"`
	Required bool     `json:"required" yaml:"required"`
	Default  *Literal `json:"default,omitempty" yaml:"default,omitempty"`
	XML      *XMLType `json:"xml,omitempty" yaml:"xml,omitempty"`
	// Options is the constraint bag (e.g. minimum) passed through to the
	// emitted validation metadata.
	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`
}

// Option is a single key/value constraint attached to an attribute.
type Option struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// HasTerm reports whether the attribute declares a term binding.
func (a *Attribute) HasTerm() bool { return a.Term != "" }

// Option returns the value of a constraint by key, if declared.
func (a *Attribute) Option(key string) (string, bool) {
	for _, opt := range a.Options {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return "", false
}

// XMLBinding returns the declared binding or the element default.
func (a *Attribute) XMLBinding() *XMLType {
	if a.XML != nil {
		return a.XML
	}
	return DefaultXMLType(a.Name)
}
