// Package pydantic emits the validated-model backend: pydantic BaseModel
// classes with assignment revalidation, an embedded JSON-LD layer and the
// shared runtime helpers.
package pydantic

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

const fileTemplate = `{{.Notice}}

from __future__ import annotations
from pydantic import BaseModel, ConfigDict, Field
from typing import Dict, Generic, List, Optional, TypeVar, Union
from enum import Enum
from uuid import uuid4
from datetime import date, datetime

{{.FilterWrapper}}

{{.LDHelpers}}

# Model definitions

{{range .Classes}}{{.}}


{{end}}{{if .ObjectNames}}# Rebuild all the classes within this file
for cls in [
{{range .ObjectNames}}    {{.}},
{{end}}]:
    cls.model_rebuild()
{{end}}`

type fileView struct {
	Notice        string
	FilterWrapper string
	LDHelpers     string
	Classes       []string
	ObjectNames   []string
}

// Generate renders the whole model as one pydantic source unit. The
// transform is pure: the same model always yields byte-identical output.
func Generate(m *model.DataModel) (string, error) {
	cfg := m.Config.Normalized()
	profile := semantic.PydanticProfile

	view := fileView{
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
		view.ObjectNames = append(view.ObjectNames, m.Objects[i].Name)
	}
	for i := range m.Enums {
		view.Classes = append(view.Classes, pybase.EnumClass(&m.Enums[i]))
	}

	tmpl, err := template.New("pydantic").Parse(fileTemplate)
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
	b.WriteString("class " + obj.Name + "(BaseModel):\n")
	if doc := strings.Join(strings.Fields(obj.Docstring), " "); doc != "" {
		b.WriteString(`    """` + common.Wrap(doc, 84, "", "    ") + `"""` + "\n\n")
	}

	b.WriteString("    model_config: ConfigDict = ConfigDict(\n")
	b.WriteString("        validate_assignment=True,\n")
	b.WriteString("    )\n\n")

	attrs := obj.RequiredFirst()
	for i := range attrs {
		expr, err := typemap.Resolve(&attrs[i], m)
		if err != nil {
			return "", fmt.Errorf("object %s: %w", obj.Name, err)
		}
		b.WriteString("    " + attrs[i].Name + ": " + typemap.Python(expr, typemap.StyleModern) + " = Field(\n")
		for _, arg := range fieldArgs(&attrs[i], expr) {
			b.WriteString("        " + arg + "\n")
		}
		b.WriteString("    )\n")
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
	b.WriteString("\n" + semantic.PydanticProfile.MutationMethods())

	return strings.TrimRight(b.String(), "\n"), nil
}

func fieldArgs(attr *model.Attribute, expr typemap.Expr) []string {
	var args []string
	if typemap.IsList(expr) {
		args = append(args, "default_factory=list,")
	} else if lit, ok := typemap.DefaultExpr(attr, expr); ok {
		args = append(args, "default="+lit+",")
	} else {
		args = append(args, "...,")
	}
	args = append(args, pybase.DescriptionArg(attr.Docstring, "        ")...)
	args = append(args, pybase.ConstraintArgs(attr)...)
	return args
}

func ldFields(cfg model.Config, obj *model.Object) string {
	var b strings.Builder
	b.WriteString("    ld_id: str = Field(\n")
	b.WriteString("        serialization_alias=\"@id\",\n")
	b.WriteString("        default_factory=" + semantic.IDFactory(cfg, obj) + ",\n")
	b.WriteString("    )\n")
	b.WriteString("    ld_type: list[str] = Field(\n")
	b.WriteString("        serialization_alias=\"@type\",\n")
	b.WriteString("        default_factory=lambda: " + semantic.TypeListLiteral(cfg, obj, "        ") + ",\n")
	b.WriteString("    )\n")
	b.WriteString("    ld_context: dict[str, str | dict] = Field(\n")
	b.WriteString("        serialization_alias=\"@context\",\n")
	b.WriteString("        default_factory=lambda: " + semantic.ContextLiteral(cfg, obj, "        ") + ",\n")
	b.WriteString("    )\n")
	return b.String()
}
