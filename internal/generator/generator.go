// Package generator orchestrates model rendering across all target backends.
package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"mdlgen/internal/generator/dataclass"
	"mdlgen/internal/generator/jsonschema"
	"mdlgen/internal/generator/pydantic"
	"mdlgen/internal/generator/pydanticxml"
	"mdlgen/internal/generator/sdrdm"
	"mdlgen/internal/log"
	"mdlgen/internal/model"
)

// Generator orchestrates source generation for all target backends.
type Generator struct {
	outputDir string
	logger    *slog.Logger
	trace     log.TraceLogger
}

// BackendGenerator renders a validated model into one source unit.
type BackendGenerator func(m *model.DataModel) (string, error)

// Backend couples a renderer with the file name it emits under the output
// directory.
type Backend struct {
	Generate BackendGenerator
	FileName string
}

var backends = map[string]Backend{
	"python-pydantic":     {pydantic.Generate, "model.py"},
	"python-pydantic-xml": {pydanticxml.Generate, "model.py"},
	"python-dataclass":    {dataclass.Generate, "model.py"},
	"python-sdrdm":        {sdrdm.Generate, "core.py"},
	"json-schema":         {jsonschema.Generate, "schema.json"},
}

// Names lists the supported backend keys, sorted.
func Names() []string {
	keys := make([]string, 0, len(backends))
	for k := range backends {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render runs one backend against a validated model and returns the rendered
// source. It is pure: no filesystem access, identical output for identical
// input.
func Render(backend string, m *model.DataModel) (string, error) {
	b, ok := backends[backend]
	if !ok {
		return "", fmt.Errorf("unsupported template '%s' (supported: %v)", backend, Names())
	}
	return b.Generate(m)
}

func New(outputDir string, logger *slog.Logger, trace log.TraceLogger) *Generator {
	return &Generator{
		outputDir: outputDir,
		logger:    logger,
		trace:     trace,
	}
}

// GenAll renders every backend concurrently. Backends are independent pure
// transforms over the same read-only model, so the fan-out needs no locking;
// the first failure cancels the run.
func (g *Generator) GenAll(m *model.DataModel) error {
	var eg errgroup.Group
	for _, name := range Names() {
		name := name
		eg.Go(func() error {
			if err := g.GenerateBackend(name, m); err != nil {
				return fmt.Errorf("generate %s: %w", name, err)
			}
			return nil
		})
	}
	return eg.Wait()
}

// GenerateBackend renders one backend and writes its file under
// <outputDir>/<backend>/.
func (g *Generator) GenerateBackend(backend string, m *model.DataModel) error {
	b, ok := backends[backend]
	if !ok {
		return fmt.Errorf("unsupported template '%s' (supported: %v)", backend, Names())
	}

	fingerprint, err := model.Fingerprint(m)
	if err != nil {
		return fmt.Errorf("fingerprint model: %w", err)
	}
	g.logger.Info("Generating sources", "template", backend, "model", fingerprint)

	source, err := b.Generate(m)
	if err != nil {
		return err
	}
	g.trace.Log(backend, []byte(source))

	outputPath := filepath.Join(g.outputDir, backend)
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("failed to create %s output directory: %w", backend, err)
	}
	target := filepath.Join(outputPath, b.FileName)
	if err := os.WriteFile(target, []byte(source), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}

	g.logger.Info("Generation complete", "template", backend, "output", target)
	return nil
}
