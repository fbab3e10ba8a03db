// Package jsonschema exports a model as a JSON Schema document. The root
// object is flattened into the document head and every type reachable from it
// lands under $defs; property order follows attribute declaration order.
package jsonschema

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"mdlgen/internal/model"
	"mdlgen/internal/typemap"
)

const draft = "https://json-schema.org/draft/2020-12/schema"

// document is a JSON object that marshals its members in insertion order.
type document struct {
	keys []string
	vals map[string]any
}

func newDocument() *document {
	return &document{vals: map[string]any{}}
}

func (d *document) set(key string, val any) *document {
	if _, ok := d.vals[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.vals[key] = val
	return d
}

func (d *document) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		b.Write(name)
		b.WriteByte(':')
		val, err := json.Marshal(d.vals[key])
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// Generate renders the model as an indented JSON Schema document rooted at
// the first declared object.
func Generate(m *model.DataModel) (string, error) {
	if len(m.Objects) == 0 {
		return "", fmt.Errorf("model %s has no objects", m.Name)
	}
	return GenerateRoot(m, m.Objects[0].Name)
}

// GenerateRoot renders the schema with the named object as document root.
func GenerateRoot(m *model.DataModel, root string) (string, error) {
	rootObj, ok := m.Object(root)
	if !ok {
		return "", fmt.Errorf("root object %s not found", root)
	}

	usedObjects := map[string]bool{}
	usedEnums := map[string]bool{}
	if err := collect(m, rootObj, usedObjects, usedEnums); err != nil {
		return "", err
	}

	doc := newDocument()
	doc.set("$schema", draft)
	if id, err := model.Fingerprint(m); err == nil {
		doc.set("$id", id)
	}
	if err := objectSchema(doc, m, rootObj); err != nil {
		return "", err
	}

	defs := newDocument()
	for _, name := range sortedKeys(usedObjects) {
		if name == root {
			continue
		}
		obj, _ := m.Object(name)
		def := newDocument()
		if err := objectSchema(def, m, obj); err != nil {
			return "", err
		}
		defs.set(name, def)
	}
	for _, name := range sortedKeys(usedEnums) {
		enum, _ := m.Enum(name)
		def := newDocument()
		def.set("title", enum.Name)
		def.set("type", "string")
		if enum.Docstring != "" {
			def.set("description", strings.Join(strings.Fields(enum.Docstring), " "))
		}
		var values []string
		for _, member := range enum.Members {
			values = append(values, member.Value)
		}
		def.set("enum", values)
		defs.set(name, def)
	}
	if len(defs.keys) > 0 {
		doc.set("$defs", defs)
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(raw) + "\n", nil
}

// collect walks the reference graph from an object and records every object
// and enumeration the schema must define.
func collect(m *model.DataModel, obj *model.Object, objects, enums map[string]bool) error {
	objects[obj.Name] = true
	for i := range obj.Attributes {
		for _, dtype := range obj.Attributes[i].DTypes {
			if child, ok := m.Object(dtype); ok && !objects[child.Name] {
				if err := collect(m, child, objects, enums); err != nil {
					return err
				}
			} else if m.IsEnum(dtype) {
				enums[dtype] = true
			}
		}
	}
	return nil
}

func objectSchema(doc *document, m *model.DataModel, obj *model.Object) error {
	doc.set("title", obj.Name)
	doc.set("type", "object")
	if obj.Docstring != "" {
		doc.set("description", strings.Join(strings.Fields(obj.Docstring), " "))
	}
	if obj.Term != "" {
		doc.set("$term", obj.Term)
	}

	props := newDocument()
	var required []string
	for i := range obj.Attributes {
		attr := &obj.Attributes[i]
		prop, err := propertySchema(m, attr)
		if err != nil {
			return fmt.Errorf("object %s: %w", obj.Name, err)
		}
		props.set(attr.Name, prop)
		if attr.Required {
			required = append(required, attr.Name)
		}
	}
	doc.set("properties", props)
	if len(required) > 0 {
		doc.set("required", required)
	}
	doc.set("additionalProperties", false)
	return nil
}

func propertySchema(m *model.DataModel, attr *model.Attribute) (*document, error) {
	expr, err := typemap.Resolve(attr, m)
	if err != nil {
		return nil, err
	}
	doc := newDocument()
	if attr.Docstring != "" {
		doc.set("description", strings.Join(strings.Fields(attr.Docstring), " "))
	}
	if attr.HasTerm() {
		doc.set("$term", attr.Term)
	}
	if err := typeSchema(doc, expr); err != nil {
		return nil, err
	}
	if attr.Default != nil {
		doc.set("default", attr.Default)
	}
	for _, opt := range attr.Options {
		switch strings.ToLower(opt.Key) {
		case "minimum", "maximum":
			if n, err := strconv.ParseFloat(opt.Value, 64); err == nil {
				doc.set(strings.ToLower(opt.Key), n)
			}
		case "minlength":
			if n, err := strconv.Atoi(opt.Value); err == nil {
				doc.set("minLength", n)
			}
		case "maxlength":
			if n, err := strconv.Atoi(opt.Value); err == nil {
				doc.set("maxLength", n)
			}
		case "pattern":
			doc.set("pattern", opt.Value)
		}
	}
	return doc, nil
}

// typeSchema writes the type clause of a resolved expression. Optionality is
// carried by the required list, not by the clause itself.
func typeSchema(doc *document, expr typemap.Expr) error {
	switch expr.Kind {
	case typemap.KindOptional:
		return typeSchema(doc, *expr.Inner)
	case typemap.KindScalar:
		writeScalar(doc, expr.Scalar)
	case typemap.KindRef:
		doc.set("$ref", "#/$defs/"+expr.Ref)
	case typemap.KindList:
		doc.set("type", "array")
		items := newDocument()
		if err := typeSchema(items, *expr.Inner); err != nil {
			return err
		}
		doc.set("items", items)
	case typemap.KindUnion:
		var alts []*document
		for i := range expr.Alts {
			if expr.Alts[i].Kind == typemap.KindNone {
				continue
			}
			alt := newDocument()
			if err := typeSchema(alt, expr.Alts[i]); err != nil {
				return err
			}
			alts = append(alts, alt)
		}
		doc.set("anyOf", alts)
	default:
		return fmt.Errorf("unsupported type expression %v", expr.Kind)
	}
	return nil
}

// writeScalar maps a canonical scalar to its schema clause; temporal scalars
// keep their precision in a format annotation.
func writeScalar(doc *document, scalar string) {
	switch scalar {
	case "integer":
		doc.set("type", "integer")
	case "float":
		doc.set("type", "number")
	case "boolean":
		doc.set("type", "boolean")
	case "date":
		doc.set("type", "string")
		doc.set("format", "date")
	case "datetime":
		doc.set("type", "string")
		doc.set("format", "date-time")
	default:
		doc.set("type", "string")
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
