package model

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// BasicTypes are the scalar type names an attribute may use without a
// matching object or enumeration declaration.
var BasicTypes = []string{
	"string", "number", "integer", "float", "boolean", "bool",
	"date", "datetime", "bytes", "identifier", "null", "none",
}

// ReservedNames are the backend spellings of the semantic triad (identity,
// type-list, context-map). Declared attributes must not collide with them.
var ReservedNames = []string{
	"ld_id", "ld_type", "ld_context", "id", "__type__", "__context__",
}

// ErrorKind classifies a validation error.
type ErrorKind int

const (
	NameError ErrorKind = iota
	TypeError
	DuplicateError
	GlobalError
)

func (k ErrorKind) String() string {
	switch k {
	case NameError:
		return "NameError"
	case TypeError:
		return "TypeError"
	case DuplicateError:
		return "DuplicateError"
	default:
		return "GlobalError"
	}
}

// ValidationError is a single schema-consistency failure, reported with the
// offending type and attribute name.
type ValidationError struct {
	Kind      ErrorKind
	Object    string
	Attribute string
	Message   string
}

func (e ValidationError) Error() string {
	location := e.Object
	if location == "" {
		location = "Global"
	}
	if e.Attribute != "" {
		location += "." + e.Attribute
	}
	return fmt.Sprintf("[%s] %s: %s",
		color.New(color.Bold).Sprint(location),
		color.New(color.Bold).Sprint(e.Kind),
		color.New(color.FgRed, color.Bold).Sprint(e.Message),
	)
}

// Validator accumulates schema-consistency errors. Any error is fatal to the
// whole generation run; there is no partial emission.
type Validator struct {
	Errors []ValidationError
}

func (v *Validator) add(kind ErrorKind, object, attribute, format string, args ...any) {
	v.Errors = append(v.Errors, ValidationError{
		Kind:      kind,
		Object:    object,
		Attribute: attribute,
		Message:   fmt.Sprintf(format, args...),
	})
}

func (v *Validator) IsValid() bool { return len(v.Errors) == 0 }

func (v *Validator) Error() string {
	lines := make([]string, len(v.Errors))
	for i, e := range v.Errors {
		lines[i] = e.Error()
	}
	return strings.Join(lines, "\n")
}

// Validate checks the IR for consistency: unique type and attribute names,
// no reserved-name collisions, no dangling type references, and non-empty
// enumerations. It returns nil when the model is valid.
func Validate(m *DataModel) error {
	v := &Validator{}

	typeNames := map[string]bool{}
	for _, obj := range m.Objects {
		if typeNames[obj.Name] {
			v.add(DuplicateError, obj.Name, "", "object %q is defined more than once", obj.Name)
		}
		typeNames[obj.Name] = true
	}
	for _, enum := range m.Enums {
		if typeNames[enum.Name] {
			v.add(DuplicateError, enum.Name, "", "type %q is defined more than once", enum.Name)
		}
		typeNames[enum.Name] = true
	}

	for i := range m.Objects {
		v.validateObject(m, &m.Objects[i])
	}
	for i := range m.Enums {
		v.validateEnum(&m.Enums[i])
	}

	if !v.IsValid() {
		return v
	}
	return nil
}

func (v *Validator) validateObject(m *DataModel, obj *Object) {
	if !isValidIdentifier(obj.Name) {
		v.add(NameError, obj.Name, "", "object name %q is not a valid identifier", obj.Name)
	}

	seen := map[string]bool{}
	for i := range obj.Attributes {
		attr := &obj.Attributes[i]
		if seen[attr.Name] {
			v.add(DuplicateError, obj.Name, attr.Name,
				"attribute %q is declared more than once", attr.Name)
		}
		seen[attr.Name] = true

		if isReservedName(attr.Name) {
			v.add(NameError, obj.Name, attr.Name,
				"attribute name %q collides with a reserved semantic field", attr.Name)
		}
		if !isValidIdentifier(attr.Name) {
			v.add(NameError, obj.Name, attr.Name,
				"attribute name %q is not a valid identifier", attr.Name)
		}
		if len(attr.DTypes) == 0 {
			v.add(TypeError, obj.Name, attr.Name, "attribute has no declared type")
		}
		for _, dtype := range attr.DTypes {
			if isBasicType(dtype) || typeDeclared(m, dtype) {
				continue
			}
			v.add(TypeError, obj.Name, attr.Name,
				"type %q is neither a basic type nor a declared object or enumeration", dtype)
		}
	}
}

func (v *Validator) validateEnum(enum *Enumeration) {
	if !enum.HasValues() {
		v.add(GlobalError, enum.Name, "", "enumeration has no members")
	}
	seen := map[string]bool{}
	for _, member := range enum.Members {
		if seen[member.Name] {
			v.add(DuplicateError, enum.Name, member.Name,
				"member %q is declared more than once", member.Name)
		}
		seen[member.Name] = true
	}
}

func typeDeclared(m *DataModel, name string) bool {
	return m.IsObject(name) || m.IsEnum(name)
}

func isBasicType(name string) bool {
	lower := strings.ToLower(name)
	for _, basic := range BasicTypes {
		if lower == basic {
			return true
		}
	}
	return false
}

func isReservedName(name string) bool {
	for _, reserved := range ReservedNames {
		if name == reserved {
			return true
		}
	}
	return false
}

func isValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_',
			r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
