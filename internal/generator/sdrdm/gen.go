// Package sdrdm emits the legacy XML backend: sdRDM.DataModel classes with
// pydantic-xml field placement, ListPlus collections and legacy typing
// spellings. This backend carries no JSON-LD layer; semantic terms travel as
// json_schema_extra metadata and the repository IRI as a private attribute.
package sdrdm

import (
	"fmt"
	"strings"
	"text/template"

	"mdlgen/internal/generator/common"
	"mdlgen/internal/generator/pybase"
	"mdlgen/internal/model"
	"mdlgen/internal/typemap"
)

const fileTemplate = `{{.Notice}}

from __future__ import annotations
from typing import Dict, List, Optional
from enum import Enum
from uuid import uuid4
from datetime import date, datetime

from lxml.etree import _Element
from pydantic import PrivateAttr, model_validator
from pydantic_xml import attr, element

import sdRDM
from sdRDM.base.listplus import ListPlus
from sdRDM.tools.utils import elem2dict


{{range .Classes}}{{.}}


{{end}}`

type fileView struct {
	Notice  string
	Classes []string
}

// Generate renders the whole model as one sdRDM source unit.
func Generate(m *model.DataModel) (string, error) {
	cfg := m.Config.Normalized()

	view := fileView{Notice: common.GeneratedNotice}
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

	tmpl, err := template.New("sdrdm").Parse(fileTemplate)
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
	b.WriteString("    sdRDM.DataModel,\n")
	b.WriteString("    search_mode=\"unordered\",\n")
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
		b.WriteString(field + "\n")
	}

	b.WriteString(fmt.Sprintf("    _repo: str = PrivateAttr(default=%q)\n", cfg.Repo))

	addTo, err := pybase.AddToMethods(obj, m, typemap.StyleLegacy, false)
	if err != nil {
		return "", fmt.Errorf("object %s: %w", obj.Name, err)
	}
	for _, method := range addTo {
		b.WriteString("\n" + method + "\n")
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// fieldText renders one attribute with its XML placement. The legacy layout
// indents call arguments twelve spaces and closes at eight; collections use
// ListPlus as their factory.
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

	var args []string
	if typemap.IsList(expr) {
		args = append(args, "default_factory=ListPlus,")
	} else if lit, ok := typemap.DefaultExpr(attr, expr); ok {
		args = append(args, "default="+lit+",")
	}
	args = append(args, fmt.Sprintf("tag=%q,", binding.Name))
	args = append(args, "json_schema_extra="+schemaExtra(attr))

	var b strings.Builder
	b.WriteString("    " + attr.Name + ": " + typemap.Python(expr, typemap.StyleLegacy) + " = " + entity + "(\n")
	for _, arg := range args {
		b.WriteString("            " + arg + "\n")
	}
	b.WriteString("        )\n")
	return b.String(), nil
}

// schemaExtra renders the semantic metadata dict: the attribute term first,
// then any numeric or length constraints as string values.
func schemaExtra(attr *model.Attribute) string {
	var b strings.Builder
	b.WriteString("dict(")
	if attr.HasTerm() {
		b.WriteString(fmt.Sprintf("term = %q,", attr.Term))
	}
	for _, opt := range attr.Options {
		if pybase.IsConstraint(opt.Key) {
			b.WriteString(fmt.Sprintf("%s = %q,", strings.ToLower(opt.Key), opt.Value))
		}
	}
	b.WriteString(")")
	return b.String()
}
