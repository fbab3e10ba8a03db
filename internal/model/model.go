// Package model holds the schema intermediate representation: object types,
// enumerations, attributes and the namespace table. The IR is produced by a
// front-end (JSON or YAML definition files), validated once, and consumed
// read-only by the generation pipeline.
package model

// DataModel is the root of the IR.
type DataModel struct {
	Name    string        `json:"name,omitempty" yaml:"name,omitempty"`
	Objects []Object      `json:"objects" yaml:"objects"`
	Enums   []Enumeration `json:"enums,omitempty" yaml:"enums,omitempty"`
	Config  Config        `json:"config,omitempty" yaml:"config,omitempty"`
}

// Object returns the object type with the given name.
func (m *DataModel) Object(name string) (*Object, bool) {
	for i := range m.Objects {
		if m.Objects[i].Name == name {
			return &m.Objects[i], true
		}
	}
	return nil, false
}

// Enum returns the enumeration with the given name.
func (m *DataModel) Enum(name string) (*Enumeration, bool) {
	for i := range m.Enums {
		if m.Enums[i].Name == name {
			return &m.Enums[i], true
		}
	}
	return nil, false
}

// IsEnum reports whether name refers to a declared enumeration.
func (m *DataModel) IsEnum(name string) bool {
	_, ok := m.Enum(name)
	return ok
}

// IsObject reports whether name refers to a declared object type.
func (m *DataModel) IsObject(name string) bool {
	_, ok := m.Object(name)
	return ok
}
