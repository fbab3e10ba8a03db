// Package gentest provides the shared model fixture used by generator and
// semantic tests: two linked object types, an enumeration and a populated
// namespace table, covering every field shape the emitters distinguish.
package gentest

import "mdlgen/internal/model"

// Model builds a fresh fixture model. Callers may mutate it freely.
func Model() *model.DataModel {
	return &model.DataModel{
		Name: "Test",
		Config: model.Config{
			Prefix: "tst",
			Repo:   "https://www.github.com/my/repo/",
			Prefixes: model.OrderedMap{
				{Key: "tst", Value: "https://www.github.com/my/repo/"},
				{Key: "schema", Value: "http://schema.org/"},
			},
		},
		Objects: []model.Object{
			{
				Name:      "Test",
				Docstring: "A test object.",
				Attributes: []model.Attribute{
					{
						Name:      "name",
						DTypes:    []string{"string"},
						Required:  true,
						Term:      "schema:hello",
						IsID:      true,
						Docstring: "The name of the test.",
						XML:       &model.XMLType{Kind: model.XMLAttribute, Name: "name"},
					},
					{
						Name:    "number",
						DTypes:  []string{"float"},
						Term:    "schema:one",
						Default: model.IntegerLiteral(1),
						XML:     &model.XMLType{Kind: model.XMLAttribute, Name: "number"},
					},
					{
						Name:     "test2",
						DTypes:   []string{"Test2"},
						Multiple: true,
						Term:     "schema:something",
						XML:      &model.XMLType{Kind: model.XMLElement, Name: "SomeTest2"},
					},
					{
						Name:   "ontology",
						DTypes: []string{"Ontology"},
					},
				},
			},
			{
				Name: "Test2",
				Attributes: []model.Attribute{
					{
						Name:     "names",
						DTypes:   []string{"string"},
						Multiple: true,
						Term:     "schema:hello",
						XML:      &model.XMLType{Kind: model.XMLElement, Name: "name"},
					},
					{
						Name:    "number",
						DTypes:  []string{"float"},
						Term:    "schema:one",
						Options: []model.Option{{Key: "minimum", Value: "0"}},
						XML:     &model.XMLType{Kind: model.XMLAttribute, Name: "number"},
					},
				},
			},
		},
		Enums: []model.Enumeration{
			{
				Name: "Ontology",
				Members: []model.EnumMember{
					{Name: "ECO", Value: "https://www.evidenceontology.org/term/"},
					{Name: "GO", Value: "https://amigo.geneontology.org/amigo/term/"},
					{Name: "SIO", Value: "http://semanticscience.org/resource/"},
				},
			},
		},
	}
}
