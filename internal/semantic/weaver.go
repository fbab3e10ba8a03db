// Package semantic computes the JSON-LD layer woven into every generated
// type: the reserved identity/type-list/context-map triad and the runtime
// mutation helpers. The computed renderings are shared by all backends so the
// semantic behavior is identical no matter which backend emitted a class.
package semantic

import (
	"strings"

	"mdlgen/internal/model"
)

// ContextEntry is one entry of an emitted @context map, in emission order.
type ContextEntry struct {
	Key   string
	Value string
	// Structured marks the {"@id": value, "@type": "@id"} form used for
	// identifier-reference terms.
	Structured bool
}

// CanonicalTerm returns the primary type term "<prefix>:<Name>".
func CanonicalTerm(cfg model.Config, obj *model.Object) string {
	return cfg.Prefix + ":" + obj.Name
}

// IDFactory renders the Python expression producing a fresh identity per
// instantiation: "<prefix>:<Name>/" followed by a new UUID.
func IDFactory(cfg model.Config, obj *model.Object) string {
	return `lambda: "` + CanonicalTerm(cfg, obj) + `/" + str(uuid4())`
}

// TypeTerms returns the type-list default content: the canonical term first,
// followed by the object's own term when one is declared.
func TypeTerms(cfg model.Config, obj *model.Object) []string {
	terms := []string{CanonicalTerm(cfg, obj)}
	if obj.Term != "" && obj.Term != terms[0] {
		terms = append(terms, obj.Term)
	}
	return terms
}

// ContextEntries assembles the deterministic context map for an object: every
// namespace-table entry in declaration order, then one entry per term-bearing
// attribute in attribute declaration order.
func ContextEntries(cfg model.Config, obj *model.Object) []ContextEntry {
	entries := make([]ContextEntry, 0, len(cfg.Prefixes)+len(obj.Attributes))
	for _, p := range cfg.Prefixes {
		entries = append(entries, ContextEntry{Key: p.Key, Value: p.Value})
	}
	for _, attr := range obj.Attributes {
		if !attr.HasTerm() {
			continue
		}
		entries = append(entries, ContextEntry{
			Key:        attr.Name,
			Value:      attr.Term,
			Structured: attr.IsID,
		})
	}
	return entries
}

// TypeListLiteral renders the type-list default as a Python list literal.
// indent is the indentation of the closing bracket.
func TypeListLiteral(cfg model.Config, obj *model.Object, indent string) string {
	var b strings.Builder
	b.WriteString("[\n")
	for _, term := range TypeTerms(cfg, obj) {
		b.WriteString(indent + `    "` + term + `",` + "\n")
	}
	b.WriteString(indent + "]")
	return b.String()
}

// ContextLiteral renders the context map default as a Python dict literal,
// byte-identical across backends. indent is the indentation of the closing
// brace.
func ContextLiteral(cfg model.Config, obj *model.Object, indent string) string {
	inner := indent + "    "
	var b strings.Builder
	b.WriteString("{\n")
	for _, entry := range ContextEntries(cfg, obj) {
		if entry.Structured {
			b.WriteString(inner + `"` + entry.Key + `": {` + "\n")
			b.WriteString(inner + `    "@id": "` + entry.Value + `",` + "\n")
			b.WriteString(inner + `    "@type": "@id",` + "\n")
			b.WriteString(inner + "},\n")
			continue
		}
		b.WriteString(inner + `"` + entry.Key + `": "` + entry.Value + `",` + "\n")
	}
	b.WriteString(indent + "}")
	return b.String()
}
