package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

type scaffoldNested struct {
	TraceFile string
}

type scaffoldSample struct {
	InputFile string `default:"model.json"`
	MaxDepth  int    `default:"3"`
	DryRun    bool
	Skipped   string         `kong:"-"`
	Log       scaffoldNested `embed:"" prefix:"log."`
}

func TestBuildMapFromStructKeys(t *testing.T) {
	out := buildMapFromStruct(reflect.TypeOf(scaffoldSample{}))

	assert.Equal(t, "model.json", out["inputFile"])
	assert.Equal(t, int64(3), out["maxDepth"])
	assert.Equal(t, false, out["dryRun"])
	assert.NotContains(t, out, "Skipped")
	assert.NotContains(t, out, "skipped")

	nested, ok := out["log"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, nested, "traceFile")
}

func TestConfigInitWritesTemplate(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "generate.yaml")
	init := ConfigInit{Command: "generate", Format: "yaml", Output: dest}
	require.NoError(t, init.Run())

	raw, err := os.ReadFile(dest)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &parsed))
	assert.Equal(t, "python-pydantic", parsed["template"])
	assert.Equal(t, "-", parsed["output"])
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "generate.json")
	require.NoError(t, os.WriteFile(dest, []byte("{}"), 0o644))

	init := ConfigInit{Command: "generate", Format: "json", Output: dest}
	err := init.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")
}
