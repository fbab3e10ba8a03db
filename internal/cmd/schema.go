package cmd

import (
	"log/slog"
	"os"

	"mdlgen/internal/generator/jsonschema"
	"mdlgen/internal/loader"
)

type Schema struct {
	Input  string `arg:"" name:"input" help:"Model definition file (.json, .yaml or .yml)" type:"existingfile" env:"MDLGEN_INPUT"`
	Root   string `help:"Root object of the schema (defaults to the first declared object)" env:"MDLGEN_ROOT"`
	Output string `short:"o" help:"Destination file, or '-' for stdout" default:"-" env:"MDLGEN_OUTPUT"`
}

// Run exports the model as a JSON Schema document.
func (s *Schema) Run(logger *slog.Logger) error {
	m, err := loader.Load(s.Input)
	if err != nil {
		return err
	}

	var doc string
	if s.Root == "" {
		doc, err = jsonschema.Generate(m)
	} else {
		doc, err = jsonschema.GenerateRoot(m, s.Root)
	}
	if err != nil {
		return err
	}

	if s.Output == "-" {
		_, err = os.Stdout.WriteString(doc)
		return err
	}
	if err := os.WriteFile(s.Output, []byte(doc), 0o644); err != nil {
		return err
	}
	logger.Info("Schema written", "output", s.Output)
	return nil
}
