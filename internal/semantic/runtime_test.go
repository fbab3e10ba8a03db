package semantic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileSpellings(t *testing.T) {
	mutations := PydanticProfile.MutationMethods()
	assert.Contains(t, mutations, "self.ld_context[attr] = term")
	assert.Contains(t, mutations, "self.ld_type.append(term)")
	assert.Contains(t, mutations, "assert attr in self.model_fields,")

	mutations = DataclassProfile.MutationMethods()
	assert.Contains(t, mutations, "self.__context__[attr] = term")
	assert.Contains(t, mutations, "self.__type__.append(term)")
	assert.Contains(t, mutations, "assert attr in self.__dataclass_fields__,")
}

func TestMutationGuardsPrecedeStateChange(t *testing.T) {
	mutations := PydanticProfile.MutationMethods()

	// set_attr_term: membership assert, then prefix validation, then the
	// context write.
	assert.Less(t,
		strings.Index(mutations, "assert attr in"),
		strings.Index(mutations, "validate_prefix(term, prefix)"))
	assert.Less(t,
		strings.Index(mutations, "validate_prefix(term, prefix)"),
		strings.Index(mutations, "self.ld_context[attr] = term"))
}

func TestLDHelpers(t *testing.T) {
	helpers := PydanticProfile.LDHelpers()

	assert.Contains(t, helpers, "def add_namespace(obj, prefix: str | None, iri: str | None):")
	assert.Contains(t, helpers, "if prefix is None and iri is None:\n        return")
	assert.Contains(t, helpers, `raise ValueError("If prefix is provided, iri must also be provided")`)
	assert.Contains(t, helpers, `raise ValueError("If iri is provided, prefix must also be provided")`)
	assert.Contains(t, helpers, "def validate_prefix(term: str | dict, prefix: str):")
	assert.Contains(t, helpers, `term["@id"].startswith(prefix + ":")`)

	// helpers write through the profile's context spelling
	assert.Contains(t, helpers, "obj.ld_context[prefix] = iri")
	assert.Contains(t, DataclassProfile.LDHelpers(), "obj.__context__[prefix] = iri")
}

func TestFilterWrapperLookupPerProfile(t *testing.T) {
	pyd := PydanticProfile.FilterWrapper()
	assert.Contains(t, pyd, "if name not in type(item).model_fields:")
	assert.Contains(t, pyd, "raise AttributeError(")

	dc := DataclassProfile.FilterWrapper()
	assert.Contains(t, dc, "if name not in type(item).__dataclass_fields__:")
	assert.NotContains(t, dc, "model_fields")
}
