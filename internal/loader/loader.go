// Package loader reads model definition files into the IR. JSON and YAML
// definitions are equivalent front-ends; the loaded model is validated before
// it reaches any generator.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"mdlgen/internal/generator/common"
	"mdlgen/internal/model"
)

// Load reads, decodes and validates a model definition file, dispatching on
// the file extension. A definition that declares no name gets the PascalCased
// file name.
func Load(path string) (*model.DataModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model definition: %w", err)
	}

	var m *model.DataModel
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		m, err = ParseJSON(raw)
	case ".yaml", ".yml":
		m, err = ParseYAML(raw)
	default:
		return nil, fmt.Errorf("unsupported model definition format '%s' (supported: .json, .yaml, .yml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if m.Name == "" {
		base := filepath.Base(path)
		m.Name = common.ToPascalCase(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if err := model.Validate(m); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseJSON decodes a JSON model definition. Unknown keys are rejected so a
// typoed constraint cannot silently vanish.
func ParseJSON(raw []byte) (*model.DataModel, error) {
	var m model.DataModel
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// ParseYAML decodes a YAML model definition.
func ParseYAML(raw []byte) (*model.DataModel, error) {
	var m model.DataModel
	dec := yaml.NewDecoder(strings.NewReader(string(raw)))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}
