package sdrdm

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
	assert.Contains(t, src, "import sdRDM")
	assert.Contains(t, src, "from sdRDM.base.listplus import ListPlus")
	assert.Contains(t, src, "from sdRDM.tools.utils import elem2dict")
	assert.Contains(t, src, "from typing import Dict, List, Optional")
	assert.Contains(t, src, "class Test(\n    sdRDM.DataModel,\n    search_mode=\"unordered\",\n):")
	assert.Contains(t, src, "class Ontology(Enum):")
}

func TestGenerateFields(t *testing.T) {
	src := render(t)

	// legacy typing spellings and ListPlus collections
	assert.Contains(t, src, "    test2: List[Test2] = element(\n            default_factory=ListPlus,\n            tag=\"SomeTest2\",")
	assert.Contains(t, src, "    names: List[str] = element(\n            default_factory=ListPlus,\n            tag=\"name\",")
	assert.Contains(t, src, "    name: str = attr(\n            tag=\"name\",")
	assert.Contains(t, src, "    number: float = attr(\n            default=1.0,\n            tag=\"number\",")
	assert.NotContains(t, src, "list[")
}

func TestGenerateSemanticMetadata(t *testing.T) {
	src := render(t)

	// terms and constraints travel as json_schema_extra, constraints in
	// string form
	assert.Contains(t, src, `json_schema_extra=dict(term = "schema:hello",)`)
	assert.Contains(t, src, `json_schema_extra=dict(term = "schema:one",minimum = "0",)`)
	assert.Contains(t, src, `json_schema_extra=dict()`)

	// namespace IRI travels as a private attribute
	assert.Equal(t, 2, strings.Count(src, `_repo: str = PrivateAttr(default="https://www.github.com/my/repo/")`))

	// no JSON-LD layer in the legacy backend
	assert.NotContains(t, src, "ld_id")
	assert.NotContains(t, src, "@context")
	assert.NotContains(t, src, "FilterWrapper")
	assert.NotContains(t, src, "set_attr_term")
}

func TestGenerateAddToHelperLegacyShape(t *testing.T) {
	src := render(t)

	assert.Equal(t, 1, strings.Count(src, "def add_to_test2("))
	assert.Contains(t, src, "names: List[str],")
	assert.Contains(t, src, "number: Optional[float],")
	assert.NotContains(t, src, `kwargs["id"]`)
}

func TestGenerateIsDeterministic(t *testing.T) {
	assert.Equal(t, render(t), render(t))
}
