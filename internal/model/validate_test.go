package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validModel() *DataModel {
	return &DataModel{
		Name: "Test",
		Objects: []Object{
			{
				Name: "Test",
				Attributes: []Attribute{
					{Name: "name", DTypes: []string{"string"}, Required: true},
					{Name: "child", DTypes: []string{"Child"}},
					{Name: "level", DTypes: []string{"Level"}},
				},
			},
			{
				Name: "Child",
				Attributes: []Attribute{
					{Name: "value", DTypes: []string{"float"}},
				},
			},
		},
		Enums: []Enumeration{
			{Name: "Level", Members: []EnumMember{{Name: "LOW", Value: "low"}}},
		},
	}
}

func TestValidateAcceptsConsistentModel(t *testing.T) {
	assert.NoError(t, Validate(validModel()))
}

func errorsOf(t *testing.T, m *DataModel) []ValidationError {
	t.Helper()
	err := Validate(m)
	require.Error(t, err)
	v, ok := err.(*Validator)
	require.True(t, ok, "expected *Validator error, got %T", err)
	require.NotEmpty(t, v.Errors)
	return v.Errors
}

func TestValidateDuplicateTypeName(t *testing.T) {
	m := validModel()
	m.Enums = append(m.Enums, Enumeration{
		Name:    "Child",
		Members: []EnumMember{{Name: "A", Value: "a"}},
	})

	errs := errorsOf(t, m)
	assert.Equal(t, DuplicateError, errs[0].Kind)
	assert.Equal(t, "Child", errs[0].Object)
}

func TestValidateReservedAttributeName(t *testing.T) {
	for _, reserved := range []string{"ld_id", "__context__", "id"} {
		m := validModel()
		m.Objects[0].Attributes = append(m.Objects[0].Attributes,
			Attribute{Name: reserved, DTypes: []string{"string"}})

		errs := errorsOf(t, m)
		found := false
		for _, e := range errs {
			if e.Kind == NameError && e.Attribute == reserved {
				found = true
			}
		}
		assert.True(t, found, "expected NameError for %q", reserved)
	}
}

func TestValidateDanglingTypeReference(t *testing.T) {
	m := validModel()
	m.Objects[0].Attributes[1].DTypes = []string{"Missing"}

	errs := errorsOf(t, m)
	assert.Equal(t, TypeError, errs[0].Kind)
	assert.Contains(t, errs[0].Message, "Missing")
}

func TestValidateAttributeWithoutType(t *testing.T) {
	m := validModel()
	m.Objects[1].Attributes[0].DTypes = nil

	errs := errorsOf(t, m)
	assert.Equal(t, TypeError, errs[0].Kind)
	assert.Equal(t, "Child", errs[0].Object)
	assert.Equal(t, "value", errs[0].Attribute)
}

func TestValidateEmptyEnum(t *testing.T) {
	m := validModel()
	m.Enums[0].Members = nil

	errs := errorsOf(t, m)
	assert.Equal(t, GlobalError, errs[0].Kind)
	assert.Equal(t, "Level", errs[0].Object)
}

func TestValidateInvalidIdentifiers(t *testing.T) {
	m := validModel()
	m.Objects[0].Attributes[0].Name = "1name"
	m.Objects[1].Name = "Child Type"
	m.Objects[0].Attributes[1].DTypes = []string{"string"} // avoid dangling ref noise

	errs := errorsOf(t, m)
	kinds := map[ErrorKind]int{}
	for _, e := range errs {
		kinds[e.Kind]++
	}
	assert.GreaterOrEqual(t, kinds[NameError], 2)
}

func TestConfigNormalized(t *testing.T) {
	cfg := Config{}.Normalized()
	assert.Equal(t, DefaultPrefix, cfg.Prefix)
	assert.Equal(t, DefaultRepo, cfg.Repo)
	v, ok := cfg.Prefixes.Get(DefaultPrefix)
	assert.True(t, ok)
	assert.Equal(t, DefaultRepo, v)

	cfg = Config{
		Prefix:   "tst",
		Repo:     "https://example.org/",
		Prefixes: OrderedMap{{Key: "schema", Value: "http://schema.org/"}},
	}.Normalized()
	require.Len(t, cfg.Prefixes, 2)
	assert.Equal(t, "tst", cfg.Prefixes[0].Key)
	assert.Equal(t, "schema", cfg.Prefixes[1].Key)
}
