package model

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		in   string
		kind LiteralKind
	}{
		{"true", LiteralBool},
		{"false", LiteralBool},
		{"1", LiteralInteger},
		{"-3", LiteralInteger},
		{"1.5", LiteralFloat},
		{"hello", LiteralString},
		{"1a", LiteralString},
	}
	for _, tt := range tests {
		lit, err := ParseLiteral(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.kind, lit.Kind, tt.in)
	}
}

func TestLiteralUnmarshalJSONKeepsKind(t *testing.T) {
	tests := []struct {
		raw  string
		kind LiteralKind
	}{
		{`1`, LiteralInteger},
		{`1.0`, LiteralFloat},
		{`true`, LiteralBool},
		{`"text"`, LiteralString},
	}
	for _, tt := range tests {
		var lit Literal
		require.NoError(t, json.Unmarshal([]byte(tt.raw), &lit), tt.raw)
		assert.Equal(t, tt.kind, lit.Kind, tt.raw)
	}
}

func TestLiteralMarshalJSON(t *testing.T) {
	tests := []struct {
		lit  *Literal
		want string
	}{
		{IntegerLiteral(1), `1`},
		{FloatLiteral(1), `1.0`},
		{FloatLiteral(2.5), `2.5`},
		{BoolLiteral(true), `true`},
		{StringLiteral("x"), `"x"`},
	}
	for _, tt := range tests {
		raw, err := json.Marshal(tt.lit)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(raw))
	}
}

func TestLiteralUnmarshalYAML(t *testing.T) {
	var holder struct {
		Default *Literal `yaml:"default"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("default: 1\n"), &holder))
	assert.Equal(t, LiteralInteger, holder.Default.Kind)
	assert.Equal(t, int64(1), holder.Default.Integer)

	require.NoError(t, yaml.Unmarshal([]byte("default: hello\n"), &holder))
	assert.Equal(t, LiteralString, holder.Default.Kind)
	assert.Equal(t, "hello", holder.Default.Str)
}
