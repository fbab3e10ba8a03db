// Package typemap resolves abstract attribute type expressions into
// backend-specific type renderings and canonical default-value expressions.
package typemap

import (
	"fmt"
	"strconv"
	"strings"

	"mdlgen/internal/model"
)

// Kind discriminates the variants of a type expression.
type Kind int

const (
	KindScalar Kind = iota
	KindRef
	KindNone
	KindOptional
	KindList
	KindUnion
)

// Expr is the tagged-variant form of an attribute type. Optional/Union
// nesting is normalized here once, so emitters never special-case it.
type Expr struct {
	Kind   Kind
	Scalar string // canonical scalar name, KindScalar only
	Ref    string // target type name, KindRef only
	Inner  *Expr  // KindOptional and KindList
	Alts   []Expr // KindUnion, declared order
}

// Canonical scalar names. The IR accepts a few aliases (number, bool,
// identifier) which are folded here.
var scalarAliases = map[string]string{
	"string":     "string",
	"identifier": "string",
	"integer":    "integer",
	"float":      "float",
	"number":     "float",
	"boolean":    "boolean",
	"bool":       "boolean",
	"date":       "date",
	"datetime":   "datetime",
	"bytes":      "bytes",
}

// Resolve builds the normalized type expression for an attribute. A reference
// to an undeclared object or enumeration is a mapping error, fatal to the
// whole generation run.
func Resolve(attr *model.Attribute, m *model.DataModel) (Expr, error) {
	if len(attr.DTypes) == 0 {
		return Expr{}, fmt.Errorf("attribute %q has no declared type", attr.Name)
	}

	alts := make([]Expr, 0, len(attr.DTypes))
	for _, dtype := range attr.DTypes {
		lower := strings.ToLower(dtype)
		switch {
		case lower == "null" || lower == "none":
			alts = append(alts, Expr{Kind: KindNone})
		case scalarAliases[lower] != "":
			alts = append(alts, Expr{Kind: KindScalar, Scalar: scalarAliases[lower]})
		case m.IsObject(dtype) || m.IsEnum(dtype):
			alts = append(alts, Expr{Kind: KindRef, Ref: dtype})
		default:
			return Expr{}, fmt.Errorf("attribute %q references undeclared type %q", attr.Name, dtype)
		}
	}

	expr := Expr{Kind: KindUnion, Alts: alts}
	if attr.Multiple {
		expr = Expr{Kind: KindList, Inner: &expr}
	} else if !attr.Required && attr.Default == nil {
		// A declared default means the attribute always carries a value, so
		// only default-free optionals are Optional-wrapped.
		expr = Expr{Kind: KindOptional, Inner: &expr}
	}
	return Normalize(expr), nil
}

// Normalize collapses single-alternative unions and nested optional wrappers.
// A None alternative inside a union is kept as declared; it is distinct from
// wrapping the union in Optional.
func Normalize(e Expr) Expr {
	switch e.Kind {
	case KindOptional:
		inner := Normalize(*e.Inner)
		if inner.Kind == KindOptional {
			return inner
		}
		return Expr{Kind: KindOptional, Inner: &inner}
	case KindList:
		inner := Normalize(*e.Inner)
		return Expr{Kind: KindList, Inner: &inner}
	case KindUnion:
		alts := make([]Expr, len(e.Alts))
		for i, alt := range e.Alts {
			alts[i] = Normalize(alt)
		}
		if len(alts) == 1 {
			return alts[0]
		}
		return Expr{Kind: KindUnion, Alts: alts}
	default:
		return e
	}
}

// pythonScalars maps canonical scalar names to Python annotations.
var pythonScalars = map[string]string{
	"string":   "str",
	"integer":  "int",
	"float":    "float",
	"boolean":  "bool",
	"date":     "date",
	"datetime": "datetime",
	"bytes":    "bytes",
}

// Style selects the annotation dialect of a Python backend.
type Style int

const (
	// StyleModern uses builtin generics (list[T]).
	StyleModern Style = iota
	// StyleLegacy uses typing generics (List[T]), kept for the legacy XML
	// backend whose runtime predates builtin generics.
	StyleLegacy
)

// Python renders the annotation for an expression.
func Python(e Expr, style Style) string {
	switch e.Kind {
	case KindScalar:
		return pythonScalars[e.Scalar]
	case KindRef:
		return e.Ref
	case KindNone:
		return "None"
	case KindOptional:
		return "Optional[" + Python(*e.Inner, style) + "]"
	case KindList:
		if style == StyleLegacy {
			return "List[" + Python(*e.Inner, style) + "]"
		}
		return "list[" + Python(*e.Inner, style) + "]"
	case KindUnion:
		parts := make([]string, len(e.Alts))
		for i, alt := range e.Alts {
			parts[i] = Python(alt, style)
		}
		return "Union[" + strings.Join(parts, ",") + "]"
	default:
		return ""
	}
}

// IsList reports whether the expression is a collection after unwrapping
// optional wrappers.
func IsList(e Expr) bool {
	for e.Kind == KindOptional {
		e = *e.Inner
	}
	return e.Kind == KindList
}

// ListRef returns the referenced type name when the expression is a
// collection of references (the shape that earns an add_to helper).
func ListRef(e Expr) (string, bool) {
	for e.Kind == KindOptional {
		e = *e.Inner
	}
	if e.Kind != KindList {
		return "", false
	}
	inner := *e.Inner
	if inner.Kind != KindRef {
		return "", false
	}
	return inner.Ref, true
}

// rendersFloat reports whether a literal default for this expression must use
// the floating-point literal form. Unions qualify only when every non-None
// alternative is a float.
func rendersFloat(e Expr) bool {
	switch e.Kind {
	case KindScalar:
		return e.Scalar == "float"
	case KindOptional, KindList:
		return rendersFloat(*e.Inner)
	case KindUnion:
		sawFloat := false
		for _, alt := range e.Alts {
			if alt.Kind == KindNone {
				continue
			}
			if !rendersFloat(alt) {
				return false
			}
			sawFloat = true
		}
		return sawFloat
	default:
		return false
	}
}

// DefaultExpr renders the canonical default literal for an attribute, or
// ("", false) when the attribute has none. Integer literals on float-typed
// attributes are normalized to the floating-point form; this rule is
// backend-agnostic. Collection defaults are not literals: each instantiation
// receives its own empty collection through a factory, which the emitters
// render per backend.
func DefaultExpr(attr *model.Attribute, e Expr) (string, bool) {
	if attr.Default == nil {
		if e.Kind == KindOptional {
			return "None", true
		}
		return "", false
	}
	lit := attr.Default
	switch lit.Kind {
	case model.LiteralBool:
		if lit.Bool {
			return "True", true
		}
		return "False", true
	case model.LiteralInteger:
		if rendersFloat(e) {
			return strconv.FormatFloat(float64(lit.Integer), 'f', 1, 64), true
		}
		return strconv.FormatInt(lit.Integer, 10), true
	case model.LiteralFloat:
		s := strconv.FormatFloat(lit.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s, true
	default:
		return strconv.Quote(lit.Str), true
	}
}
