package model

// EnumMember binds a member name to a literal IRI string. Distinct members
// may share an IRI; member names must be unique within the enumeration.
type EnumMember struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Enumeration is a named, ordered set of members. Member order is preserved
// verbatim in every backend.
type Enumeration struct {
	Name      string       `json:"name" yaml:"name"`
	Members   []EnumMember `json:"members" yaml:"members"`
	Docstring string       `json:"docstring,omitempty" yaml:"docstring,omitempty"`
}

// HasValues reports whether the enumeration declares any members.
func (e *Enumeration) HasValues() bool { return len(e.Members) > 0 }
