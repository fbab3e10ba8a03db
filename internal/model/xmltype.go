package model

import (
	"fmt"
	"strings"
)

// XMLKind classifies how an attribute is placed when a model is bound to XML.
type XMLKind int

const (
	// XMLElement serializes as a child element.
	XMLElement XMLKind = iota
	// XMLAttribute serializes as an XML attribute on the parent tag.
	XMLAttribute
	// XMLWrapped serializes as a child element nested inside a wrapper tag.
	XMLWrapped
)

// XMLType carries the XML binding of a single attribute. The tag name is
// configurable independently from the attribute name.
type XMLType struct {
	Kind XMLKind
	// Name is the tag (element/wrapped) or attribute name.
	Name string
	// Wrapper is the surrounding tag name, set only for XMLWrapped.
	Wrapper string
}

// ParseXMLType reads the compact binding notation used by the IR:
// "@name" is an attribute, "outer/name" a wrapped element, anything else a
// plain element.
func ParseXMLType(s string) (*XMLType, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty xml binding")
	}
	if name, ok := strings.CutPrefix(s, "@"); ok {
		if name == "" {
			return nil, fmt.Errorf("xml attribute binding %q has no name", s)
		}
		return &XMLType{Kind: XMLAttribute, Name: name}, nil
	}
	if outer, inner, ok := strings.Cut(s, "/"); ok {
		if outer == "" || inner == "" || strings.Contains(inner, "/") {
			return nil, fmt.Errorf("invalid wrapped xml binding %q", s)
		}
		return &XMLType{Kind: XMLWrapped, Name: inner, Wrapper: outer}, nil
	}
	return &XMLType{Kind: XMLElement, Name: s}, nil
}

// DefaultXMLType is the binding an attribute gets when none is declared: an
// element whose tag equals the attribute name.
func DefaultXMLType(attrName string) *XMLType {
	return &XMLType{Kind: XMLElement, Name: attrName}
}

func (x *XMLType) IsAttribute() bool { return x != nil && x.Kind == XMLAttribute }

func (x *XMLType) String() string {
	switch x.Kind {
	case XMLAttribute:
		return "@" + x.Name
	case XMLWrapped:
		return x.Wrapper + "/" + x.Name
	default:
		return x.Name
	}
}

// xmlTypeWire is the serialized form shared by the JSON and YAML codecs.
type xmlTypeWire struct {
	IsAttr  bool   `json:"is_attr" yaml:"is_attr"`
	Name    string `json:"name" yaml:"name"`
	Wrapper string `json:"wrapped,omitempty" yaml:"wrapped,omitempty"`
}

func (x *XMLType) toWire() xmlTypeWire {
	return xmlTypeWire{IsAttr: x.Kind == XMLAttribute, Name: x.Name, Wrapper: x.Wrapper}
}

func (x *XMLType) fromWire(w xmlTypeWire) {
	x.Name = w.Name
	x.Wrapper = w.Wrapper
	switch {
	case w.IsAttr:
		x.Kind = XMLAttribute
	case w.Wrapper != "":
		x.Kind = XMLWrapped
	default:
		x.Kind = XMLElement
	}
}
