package generator

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdlgen/internal/gentest"
	"mdlgen/internal/log"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{
		"json-schema",
		"python-dataclass",
		"python-pydantic",
		"python-pydantic-xml",
		"python-sdrdm",
	}, names)
}

func TestRenderUnknownBackend(t *testing.T) {
	_, err := Render("cobol", gentest.Model())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported template")
	assert.Contains(t, err.Error(), "python-pydantic")
}

func TestRenderIsPure(t *testing.T) {
	for _, name := range Names() {
		a, err := Render(name, gentest.Model())
		require.NoError(t, err, name)
		b, err := Render(name, gentest.Model())
		require.NoError(t, err, name)
		assert.Equal(t, a, b, name)
		assert.NotEmpty(t, a, name)
	}
}

func TestGenerateBackendWritesFile(t *testing.T) {
	dir := t.TempDir()
	gen := New(dir, testLogger(), log.NewTrace(nil))

	require.NoError(t, gen.GenerateBackend("python-pydantic", gentest.Model()))

	raw, err := os.ReadFile(filepath.Join(dir, "python-pydantic", "model.py"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "class Test(BaseModel):")
}

func TestGenAllWritesEveryBackend(t *testing.T) {
	dir := t.TempDir()
	gen := New(dir, testLogger(), log.NewTrace(nil))

	require.NoError(t, gen.GenAll(gentest.Model()))

	expected := map[string]string{
		"python-pydantic":     "model.py",
		"python-pydantic-xml": "model.py",
		"python-dataclass":    "model.py",
		"python-sdrdm":        "core.py",
		"json-schema":         "schema.json",
	}
	for backend, file := range expected {
		_, err := os.Stat(filepath.Join(dir, backend, file))
		assert.NoError(t, err, backend)
	}
}

func TestGenerateBackendTracesArtifact(t *testing.T) {
	var buf strings.Builder
	dir := t.TempDir()
	gen := New(dir, testLogger(), log.NewTrace(&buf))

	require.NoError(t, gen.GenerateBackend("json-schema", gentest.Model()))

	out := buf.String()
	assert.Contains(t, out, "template: json-schema")
	assert.Contains(t, out, `"$schema"`)
}
