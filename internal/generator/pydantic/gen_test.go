package pydantic

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

	assert.True(t, strings.HasPrefix(src, "## This is a generated file. Do not modify it manually!"))
	assert.Contains(t, src, "from __future__ import annotations")
	assert.Contains(t, src, "from pydantic import BaseModel, ConfigDict, Field")
	assert.Contains(t, src, "class FilterWrapper(Generic[Cls]):")
	assert.Contains(t, src, "def add_namespace(obj, prefix: str | None, iri: str | None):")
	assert.Contains(t, src, "# Model definitions")

	// classes in declaration order, enums last
	assert.Less(t, strings.Index(src, "class Test(BaseModel):"), strings.Index(src, "class Test2(BaseModel):"))
	assert.Less(t, strings.Index(src, "class Test2(BaseModel):"), strings.Index(src, "class Ontology(Enum):"))

	// rebuild loop covers objects only
	assert.Contains(t, src, "for cls in [\n    Test,\n    Test2,\n]:")
	assert.Contains(t, src, "cls.model_rebuild()")

	assert.True(t, strings.HasSuffix(src, "\n"))
	assert.False(t, strings.Contains(src, "\n\n\n\n"))
}

func TestGenerateFields(t *testing.T) {
	src := render(t)

	assert.Contains(t, src, "    model_config: ConfigDict = ConfigDict(\n        validate_assignment=True,\n    )")

	// required attribute without default
	assert.Contains(t, src, "    name: str = Field(\n        ...,\n        description=\"The name of the test.\",\n    )")
	// integer default on a float attribute renders in float form
	assert.Contains(t, src, "    number: float = Field(\n        default=1.0,\n    )")
	// collections always get a fresh list
	assert.Contains(t, src, "    test2: list[Test2] = Field(\n        default_factory=list,\n    )")
	// optional enum reference
	assert.Contains(t, src, "    ontology: Optional[Ontology] = Field(\n        default=None,\n    )")
	// constraint pass-through on Test2.number
	assert.Contains(t, src, "    number: Optional[float] = Field(\n        default=None,\n        ge=0,\n    )")
}

func TestGenerateSemanticLayer(t *testing.T) {
	src := render(t)

	assert.Contains(t, src, `default_factory=lambda: "tst:Test/" + str(uuid4()),`)
	assert.Contains(t, src, `default_factory=lambda: "tst:Test2/" + str(uuid4()),`)
	assert.Contains(t, src, `serialization_alias="@id",`)
	assert.Contains(t, src, `serialization_alias="@type",`)
	assert.Contains(t, src, `serialization_alias="@context",`)

	// context map: namespaces before attribute terms, is_id in structured form
	classBody := src[strings.Index(src, "class Test(BaseModel):"):strings.Index(src, "class Test2(BaseModel):")]
	assert.Contains(t, classBody, `"tst": "https://www.github.com/my/repo/",`)
	assert.Contains(t, classBody, `"schema": "http://schema.org/",`)
	assert.Contains(t, classBody, "\"name\": {\n")
	assert.Contains(t, classBody, `"@id": "schema:hello",`)
	assert.Contains(t, classBody, `"@type": "@id",`)
	assert.Contains(t, classBody, `"test2": "schema:something",`)
	assert.NotContains(t, classBody, `"ontology":`)
	assert.Less(t,
		strings.Index(classBody, `"schema": "http://schema.org/"`),
		strings.Index(classBody, `"name": {`))

	// mutation operations present on every class
	assert.Equal(t, 2, strings.Count(src, "def set_attr_term("))
	assert.Equal(t, 2, strings.Count(src, "def add_type_term("))
	assert.Contains(t, src, "self.ld_context[attr] = term")
}

func TestGenerateAddToHelper(t *testing.T) {
	src := render(t)

	assert.Equal(t, 1, strings.Count(src, "def add_to_test2("))
	assert.Contains(t, src, "names: list[str] = [],")
	assert.Contains(t, src, `params["id"] = kwargs["id"]`)
}

func TestGenerateIsDeterministic(t *testing.T) {
	assert.Equal(t, render(t), render(t))
}
