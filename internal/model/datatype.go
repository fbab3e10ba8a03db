package model

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LiteralKind discriminates the value held by a Literal.
type LiteralKind int

const (
	LiteralBool LiteralKind = iota
	LiteralInteger
	LiteralFloat
	LiteralString
)

// Literal is a typed default value attached to an attribute. The kind a value
// was declared with is preserved so that emitters can decide how to render it
// (an integer default on a float-typed attribute must still become a float
// literal in the output).
type Literal struct {
	Kind    LiteralKind
	Bool    bool
	Integer int64
	Float   float64
	Str     string
}

func BoolLiteral(v bool) *Literal     { return &Literal{Kind: LiteralBool, Bool: v} }
func IntegerLiteral(v int64) *Literal { return &Literal{Kind: LiteralInteger, Integer: v} }
func FloatLiteral(v float64) *Literal { return &Literal{Kind: LiteralFloat, Float: v} }
func StringLiteral(v string) *Literal { return &Literal{Kind: LiteralString, Str: v} }

// ParseLiteral interprets a raw scalar the way the schema front-end writes
// them: bool, then integer, then float, falling back to a string.
func ParseLiteral(s string) (*Literal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("empty literal")
	}
	// strconv.ParseBool would also claim "1" and "0"; only the spelled-out
	// forms are booleans here.
	switch strings.ToLower(trimmed) {
	case "true":
		return BoolLiteral(true), nil
	case "false":
		return BoolLiteral(false), nil
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return IntegerLiteral(i), nil
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return FloatLiteral(f), nil
	}
	return StringLiteral(trimmed), nil
}

func (l *Literal) String() string {
	switch l.Kind {
	case LiteralBool:
		return strconv.FormatBool(l.Bool)
	case LiteralInteger:
		return strconv.FormatInt(l.Integer, 10)
	case LiteralFloat:
		return strconv.FormatFloat(l.Float, 'g', -1, 64)
	default:
		return l.Str
	}
}

// UnmarshalJSON keeps the declared kind intact: "1" stays an integer, "1.0"
// becomes a float, quoted values stay strings.
func (l *Literal) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	switch {
	case s == "true" || s == "false":
		l.Kind = LiteralBool
		l.Bool = s == "true"
	case len(s) > 1 && s[0] == '"':
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid string literal %s: %w", s, err)
		}
		l.Kind = LiteralString
		l.Str = unquoted
	default:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			l.Kind = LiteralInteger
			l.Integer = i
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid literal %s", s)
		}
		l.Kind = LiteralFloat
		l.Float = f
	}
	return nil
}

func (l *Literal) MarshalJSON() ([]byte, error) {
	switch l.Kind {
	case LiteralBool:
		return []byte(strconv.FormatBool(l.Bool)), nil
	case LiteralInteger:
		return []byte(strconv.FormatInt(l.Integer, 10)), nil
	case LiteralFloat:
		s := strconv.FormatFloat(l.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return []byte(s), nil
	default:
		return []byte(strconv.Quote(l.Str)), nil
	}
}

func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("default must be a scalar, got %v", node.Kind)
	}
	switch node.Tag {
	case "!!bool":
		l.Kind = LiteralBool
		return node.Decode(&l.Bool)
	case "!!int":
		l.Kind = LiteralInteger
		return node.Decode(&l.Integer)
	case "!!float":
		l.Kind = LiteralFloat
		return node.Decode(&l.Float)
	default:
		l.Kind = LiteralString
		return node.Decode(&l.Str)
	}
}
