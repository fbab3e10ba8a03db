// Package dataclass emits the plain-record backend: Python dataclasses with
// dataclasses_json wire configuration. There are no validation hooks;
// optional and absent semantics are carried entirely by the rendered
// defaults.
package dataclass

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

const moduleDescription = `Dataclasses are a built-in Python library that provides a way to define data models
with type hints and automatic serialization to JSON.`

const fileTemplate = `{{.Docstring}}

{{.Notice}}

from __future__ import annotations
from dataclasses import dataclass, field
from dataclasses_json import config, dataclass_json
from typing import Dict, Generic, List, Optional, TypeVar, Union
from enum import Enum
from uuid import uuid4
from datetime import date, datetime

{{.FilterWrapper}}

{{.LDHelpers}}

# Model definitions

{{range .Classes}}{{.}}


{{end}}`

type fileView struct {
	Docstring     string
	Notice        string
	FilterWrapper string
	LDHelpers     string
	Classes       []string
}

// Generate renders the whole model as one dataclass source unit.
func Generate(m *model.DataModel) (string, error) {
	cfg := m.Config.Normalized()
	profile := semantic.DataclassProfile

	view := fileView{
		Docstring: strings.TrimRight(common.FileDocstring(
			"dataclass", moduleDescription,
			"https://docs.python.org/3/library/dataclasses.html"), "\n"),
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

	tmpl, err := template.New("dataclass").Parse(fileTemplate)
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
	b.WriteString("@dataclass_json\n@dataclass\nclass " + obj.Name + ":\n")
	if doc := strings.Join(strings.Fields(obj.Docstring), " "); doc != "" {
		b.WriteString(`    """` + common.Wrap(doc, 84, "", "    ") + `"""` + "\n\n")
	}

	attrs := obj.RequiredFirst()
	for i := range attrs {
		expr, err := typemap.Resolve(&attrs[i], m)
		if err != nil {
			return "", fmt.Errorf("object %s: %w", obj.Name, err)
		}
		b.WriteString("    " + attrs[i].Name + ": " + typemap.Python(expr, typemap.StyleModern))
		b.WriteString(fieldClause(&attrs[i], expr) + "\n")
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
	b.WriteString("\n" + semantic.DataclassProfile.MutationMethods())

	return strings.TrimRight(b.String(), "\n"), nil
}

// fieldClause renders the right-hand side of a dataclass field. Collections
// always receive a per-instance factory, never a shared default; absent
// optionals are excluded from the wire form.
func fieldClause(attr *model.Attribute, expr typemap.Expr) string {
	if typemap.IsList(expr) {
		return " = field(default_factory=list)"
	}
	if attr.Default == nil && expr.Kind == typemap.KindOptional {
		return " = field(default=None, metadata=config(exclude=lambda x: x is None))"
	}
	if lit, ok := typemap.DefaultExpr(attr, expr); ok {
		return " = " + lit
	}
	return ""
}

func ldFields(cfg model.Config, obj *model.Object) string {
	var b strings.Builder
	b.WriteString("    id: str = field(\n")
	b.WriteString("        metadata=config(field_name=\"@id\"),\n")
	b.WriteString("        default_factory=" + semantic.IDFactory(cfg, obj) + ",\n")
	b.WriteString("    )\n")
	b.WriteString("    __type__: list[str] = field(\n")
	b.WriteString("        metadata=config(field_name=\"@type\"),\n")
	b.WriteString("        default_factory=lambda: " + semantic.TypeListLiteral(cfg, obj, "        ") + ",\n")
	b.WriteString("    )\n")
	b.WriteString("    __context__: dict[str, str | dict] = field(\n")
	b.WriteString("        metadata=config(field_name=\"@context\"),\n")
	b.WriteString("        default_factory=lambda: " + semantic.ContextLiteral(cfg, obj, "        ") + ",\n")
	b.WriteString("    )\n")
	return b.String()
}
