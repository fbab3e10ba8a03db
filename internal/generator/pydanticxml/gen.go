// Package pydanticxml emits the XML-validated-model backend: pydantic-xml
// classes whose fields are placed per their declared XML binding (attribute,
// element or wrapped element) while carrying the same JSON-LD layer and
// runtime helpers as the other backends.
package pydanticxml

import (
	"fmt"
	"strings"
	"text/template"

	"mdlgen/internal/generator/common"
	"mdlgen/internal/generator/pybase"
	"mdlgen/internal/model"
	"mdlgen/internal/semantic"
	"mdlgen/internal/typemap"
)

const moduleDescription = `Pydantic XML is a data validation library that uses Python type annotations
and binds models to XML documents. Fields serialize as XML attributes or
child elements according to their declared binding.`

const fileTemplate = `{{.Docstring}}

{{.Notice}}

from __future__ import annotations
from typing import Dict, Generic, List, Optional, TypeVar, Union
from enum import Enum
from uuid import uuid4
from datetime import date, datetime
from xml.dom import minidom

from pydantic import Field
from pydantic_xml import BaseXmlModel, attr, element, wrapped

{{.FilterWrapper}}

{{.LDHelpers}}

# Model definitions

{{range .Classes}}{{.}}


{{end}}`

// xmlMethod pretty-prints an instance as XML with two-space indentation, or
// returns the raw bytes form when requested.
const xmlMethod = `    def xml(self, encoding: str = "unicode") -> str | bytes:
        """Converts the object to an XML string

        Args:
            encoding (str, optional): The encoding to use. If set to "bytes", will return a bytes string.
                                      Defaults to "unicode".
        """

        if encoding == "bytes":
            return self.to_xml()

        raw_xml = self.to_xml(encoding=None)
        parsed_xml = minidom.parseString(raw_xml)
        return parsed_xml.toprettyxml(indent="  ")`

type fileView struct {
	Docstring     string
	Notice        string
	FilterWrapper string
	LDHelpers     string
	Classes       []string
}

// Generate renders the whole model as one pydantic-xml source unit.
func Generate(m *model.DataModel) (string, error) {
	cfg := m.Config.Normalized()
	profile := semantic.PydanticProfile

	view := fileView{
		Docstring: strings.TrimRight(common.FileDocstring(
			"Pydantic XML model", moduleDescription,
			"https://pydantic-xml.readthedocs.io/en/latest/"), "\n"),
		Notice:        common.GeneratedNotice,
		FilterWrapper: profile.FilterWrapper(),
		LDHelpers:     profile.LDHelpers(),
	}
	for i := range m.Objects {
		class, err := classText(m, cfg, &m.Objects[i])
		if err != nil {
			return "", err
		}
		view.Classes = append(view.Classes, class)
	}
	for i := range m.Enums {
		view.Classes = append(view.Classes, pybase.EnumClass(&m.Enums[i]))
	}

	tmpl, err := template.New("pydantic-xml").Parse(fileTemplate)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, view); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return common.CleanAndTrim(b.String()), nil
}

func classText(m *model.DataModel, cfg model.Config, obj *model.Object) (string, error) {
	var b strings.Builder
	b.WriteString("class " + obj.Name + "(\n")
	b.WriteString("    BaseXmlModel,\n")
	b.WriteString("    search_mode=\"unordered\",\n")
	if len(cfg.NSMap) > 0 {
		b.WriteString("    nsmap={\n")
		for _, p := range cfg.NSMap {
			b.WriteString(fmt.Sprintf("        %q: %q,\n", p.Key, p.Value))
		}
		b.WriteString("    },\n")
	}
	b.WriteString("):\n")
	if doc := strings.Join(strings.Fields(obj.Docstring), " "); doc != "" {
		b.WriteString(`    """` + common.Wrap(doc, 84, "", "    ") + `"""` + "\n\n")
	}

	attrs := obj.RequiredFirst()
	for i := range attrs {
		field, err := fieldText(m, &attrs[i])
		if err != nil {
			return "", fmt.Errorf("object %s: %w", obj.Name, err)
		}
		b.WriteString(field)
	}

	b.WriteString("\n    # JSON-LD fields\n")
	b.WriteString(ldFields(cfg, obj))

	addTo, err := pybase.AddToMethods(obj, m, typemap.StyleModern, true)
	if err != nil {
		return "", fmt.Errorf("object %s: %w", obj.Name, err)
	}
	for _, method := range addTo {
		b.WriteString("\n" + method + "\n")
	}
	b.WriteString("\n" + xmlMethod + "\n")
	b.WriteString("\n" + semantic.PydanticProfile.MutationMethods())

	return strings.TrimRight(b.String(), "\n"), nil
}

// fieldText places one attribute per its XML binding. The binding kind comes
// straight from the IR and is never collapsed.
func fieldText(m *model.DataModel, attr *model.Attribute) (string, error) {
	expr, err := typemap.Resolve(attr, m)
	if err != nil {
		return "", err
	}
	binding := attr.XMLBinding()

	entity := "element"
	if binding.IsAttribute() {
		entity = "attr"
	}

	args := fieldArgs(attr, expr, binding.Name)

	var b strings.Builder
	b.WriteString("    " + attr.Name + ": " + typemap.Python(expr, typemap.StyleModern) + " = ")
	if binding.Kind == model.XMLWrapped {
		b.WriteString("wrapped(\n")
		b.WriteString(fmt.Sprintf("        %q,\n", binding.Wrapper))
		b.WriteString("        " + entity + "(\n")
		for _, arg := range args {
			b.WriteString("            " + arg + "\n")
		}
		b.WriteString("        ),\n")
		b.WriteString("    )\n")
		return b.String(), nil
	}
	b.WriteString(entity + "(\n")
	for _, arg := range args {
		b.WriteString("        " + arg + "\n")
	}
	b.WriteString("    )\n")
	return b.String(), nil
}

func fieldArgs(attr *model.Attribute, expr typemap.Expr, tag string) []string {
	var args []string
	if typemap.IsList(expr) {
		args = append(args, "default_factory=list,")
	} else if lit, ok := typemap.DefaultExpr(attr, expr); ok {
		args = append(args, "default="+lit+",")
	}
	args = append(args, fmt.Sprintf("tag=%q,", tag))
	args = append(args, pybase.DescriptionArg(attr.Docstring, "        ")...)
	args = append(args, pybase.ConstraintArgs(attr)...)
	return args
}

// ldFields renders the semantic triad. The identity travels as an XML
// attribute; the type list and context map are JSON-only fields excluded
// from the XML form.
func ldFields(cfg model.Config, obj *model.Object) string {
	var b strings.Builder
	b.WriteString("    ld_id: str = attr(\n")
	b.WriteString("        tag=\"id\",\n")
	b.WriteString("        serialization_alias=\"@id\",\n")
	b.WriteString("        default_factory=" + semantic.IDFactory(cfg, obj) + ",\n")
	b.WriteString("    )\n")
	b.WriteString("    ld_type: list[str] = Field(\n")
	b.WriteString("        exclude=True,\n")
	b.WriteString("        serialization_alias=\"@type\",\n")
	b.WriteString("        default_factory=lambda: " + semantic.TypeListLiteral(cfg, obj, "        ") + ",\n")
	b.WriteString("    )\n")
	b.WriteString("    ld_context: dict[str, str | dict] = Field(\n")
	b.WriteString("        exclude=True,\n")
	b.WriteString("        serialization_alias=\"@context\",\n")
	b.WriteString("        default_factory=lambda: " + semantic.ContextLiteral(cfg, obj, "        ") + ",\n")
	b.WriteString("    )\n")
	return b.String()
}
