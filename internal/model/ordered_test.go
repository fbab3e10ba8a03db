package model

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOrderedMapJSONKeepsDeclarationOrder(t *testing.T) {
	raw := `{"zeta": "1", "alpha": "2", "mid": "3"}`

	var m OrderedMap
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	require.Len(t, m, 3)
	assert.Equal(t, "zeta", m[0].Key)
	assert.Equal(t, "alpha", m[1].Key)
	assert.Equal(t, "mid", m[2].Key)

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":"1","alpha":"2","mid":"3"}`, string(out))
}

func TestOrderedMapYAMLKeepsDeclarationOrder(t *testing.T) {
	raw := "zeta: \"1\"\nalpha: \"2\"\n"

	var m OrderedMap
	require.NoError(t, yaml.Unmarshal([]byte(raw), &m))

	require.Len(t, m, 2)
	assert.Equal(t, "zeta", m[0].Key)
	assert.Equal(t, "alpha", m[1].Key)
}

func TestOrderedMapGetSet(t *testing.T) {
	var m OrderedMap
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("a", "3")

	require.Len(t, m, 2)
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}
