package dataclass

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdlgen/internal/gentest"
)

func render(t *testing.T) string {
	t.Helper()
	src, err := Generate(gentest.Model())
	require.NoError(t, err)
	return src
}

func TestGenerateLayout(t *testing.T) {
	src := render(t)

	assert.True(t, strings.HasPrefix(src, `"""`))
	assert.Contains(t, src, "## This is a generated file. Do not modify it manually!")
	assert.Contains(t, src, "from dataclasses import dataclass, field")
	assert.Contains(t, src, "from dataclasses_json import config, dataclass_json")
	assert.Contains(t, src, "@dataclass_json\n@dataclass\nclass Test:")
	assert.Contains(t, src, "@dataclass_json\n@dataclass\nclass Test2:")
	assert.Contains(t, src, "class Ontology(Enum):")

	// no pydantic machinery in the plain-record backend
	assert.NotContains(t, src, "BaseModel")
	assert.NotContains(t, src, "model_rebuild")
}

func TestGenerateFields(t *testing.T) {
	src := render(t)

	assert.Contains(t, src, "    name: str\n")
	assert.Contains(t, src, "    number: float = 1.0\n")
	assert.Contains(t, src, "    test2: list[Test2] = field(default_factory=list)\n")
	assert.Contains(t, src, "    ontology: Optional[Ontology] = field(default=None, metadata=config(exclude=lambda x: x is None))\n")
}

func TestGenerateSemanticLayer(t *testing.T) {
	src := render(t)

	// plain-record triad spellings
	assert.Contains(t, src, "    id: str = field(\n        metadata=config(field_name=\"@id\"),")
	assert.Contains(t, src, "    __type__: list[str] = field(\n        metadata=config(field_name=\"@type\"),")
	assert.Contains(t, src, "    __context__: dict[str, str | dict] = field(\n        metadata=config(field_name=\"@context\"),")
	assert.Contains(t, src, `default_factory=lambda: "tst:Test/" + str(uuid4()),`)

	// helpers and mutation methods resolve through the dataclass spellings
	assert.Contains(t, src, "type(item).__dataclass_fields__")
	assert.Contains(t, src, "self.__context__[attr] = term")
	assert.Contains(t, src, "self.__type__.append(term)")
	assert.NotContains(t, src, "ld_context")
}

func TestGenerateIsDeterministic(t *testing.T) {
	assert.Equal(t, render(t), render(t))
}
