// Package pybase holds rendering helpers shared by the Python backend
// emitters: field argument rendering, fluent child-append methods and
// enumeration classes. Backend-specific placement (validation config, XML
// attribute/element binding) stays in the backend packages.
package pybase

import (
	"fmt"
	"strings"

	"mdlgen/internal/generator/common"
	"mdlgen/internal/model"
	"mdlgen/internal/typemap"
)

// constraintArgs maps IR constraint keys to pydantic Field keyword arguments.
var constraintArgs = map[string]string{
	"minimum":   "ge",
	"maximum":   "le",
	"minlength": "min_length",
	"maxlength": "max_length",
	"pattern":   "pattern",
}

// DescriptionArg renders the description keyword lines for a Field/field
// call. Short docstrings stay on one line; longer ones wrap into a
// triple-quoted block.
func DescriptionArg(docstring, indent string) []string {
	doc := strings.Join(strings.Fields(docstring), " ")
	if doc == "" {
		return nil
	}
	if len(doc) <= 60 {
		return []string{fmt.Sprintf("description=%q,", doc)}
	}
	wrapped := common.Wrap(doc, 80, "", indent)
	lines := strings.Split(`description="""`+wrapped+`""",`, "\n")
	return lines
}

// IsConstraint reports whether an option key names a value constraint.
func IsConstraint(key string) bool {
	_, ok := constraintArgs[strings.ToLower(key)]
	return ok
}

// ConstraintArgs renders the known constraint options of an attribute as
// Field keyword arguments, in declared option order.
func ConstraintArgs(attr *model.Attribute) []string {
	var out []string
	for _, opt := range attr.Options {
		if arg, ok := constraintArgs[strings.ToLower(opt.Key)]; ok {
			out = append(out, arg+"="+opt.Value+",")
		}
	}
	return out
}

// ParamDefault renders the keyword default of an add_to parameter, or ""
// when the parameter is mandatory.
func ParamDefault(attr *model.Attribute, expr typemap.Expr) string {
	if typemap.IsList(expr) {
		return " = []"
	}
	if lit, ok := typemap.DefaultExpr(attr, expr); ok {
		return " = " + lit
	}
	return ""
}

// AddToMethod renders the fluent child-append helper for a list-of-references
// attribute: it constructs the child from the supplied keyword inputs only,
// appends it to the parent collection and returns the new instance. In the
// modern profiles the parameters carry their declared defaults and an
// identity override is passed through; the legacy profile takes bare
// parameters.
func AddToMethod(attr *model.Attribute, child *model.Object, m *model.DataModel, style typemap.Style, modern bool) (string, error) {
	params := child.RequiredFirst()

	var b strings.Builder
	// method names are always snake_case, whatever casing the attribute was
	// declared with; the field access keeps the declared spelling
	b.WriteString("    def add_to_" + common.ToSnakeCase(attr.Name) + "(\n")
	b.WriteString("        self,\n")
	for i := range params {
		expr, err := typemap.Resolve(&params[i], m)
		if err != nil {
			return "", err
		}
		b.WriteString("        " + params[i].Name + ": " + typemap.Python(expr, style))
		if modern {
			b.WriteString(ParamDefault(&params[i], expr))
		}
		b.WriteString(",\n")
	}
	b.WriteString("        **kwargs,\n")
	b.WriteString("    ):\n")

	b.WriteString("        params = {\n")
	for i := range params {
		b.WriteString(fmt.Sprintf("            %q: %s,\n", params[i].Name, params[i].Name))
	}
	b.WriteString("        }\n\n")

	if modern {
		b.WriteString("        if \"id\" in kwargs:\n")
		b.WriteString("            params[\"id\"] = kwargs[\"id\"]\n\n")
	}

	b.WriteString("        self." + attr.Name + ".append(\n")
	b.WriteString("            " + child.Name + "(**params)\n")
	b.WriteString("        )\n\n")
	b.WriteString("        return self." + attr.Name + "[-1]")
	return b.String(), nil
}

// AddToMethods renders the child-append helpers of an object in attribute
// declaration order.
func AddToMethods(obj *model.Object, m *model.DataModel, style typemap.Style, modern bool) ([]string, error) {
	var out []string
	for i := range obj.Attributes {
		attr := &obj.Attributes[i]
		expr, err := typemap.Resolve(attr, m)
		if err != nil {
			return nil, err
		}
		ref, ok := typemap.ListRef(expr)
		if !ok {
			continue
		}
		child, ok := m.Object(ref)
		if !ok {
			// list of enum references; nothing to append fluently
			continue
		}
		method, err := AddToMethod(attr, child, m, style, modern)
		if err != nil {
			return nil, err
		}
		out = append(out, method)
	}
	return out, nil
}

// EnumClass renders an enumeration: an ordered set of named members bound to
// literal IRI strings, identical across all backends.
func EnumClass(enum *model.Enumeration) string {
	var b strings.Builder
	b.WriteString("class " + enum.Name + "(Enum):\n")
	if doc := strings.Join(strings.Fields(enum.Docstring), " "); doc != "" {
		b.WriteString(`    """` + doc + `"""` + "\n")
	}
	for _, member := range enum.Members {
		b.WriteString(fmt.Sprintf("    %s = %q\n", member.Name, member.Value))
	}
	return strings.TrimRight(b.String(), "\n")
}
