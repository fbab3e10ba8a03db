package cmd

import (
	"log/slog"

	"mdlgen/internal/loader"
)

type Validate struct {
	Input string `arg:"" name:"input" help:"Model definition file (.json, .yaml or .yml)" type:"existingfile" env:"MDLGEN_INPUT"`
}

// Run loads the definition and reports every validation finding at once
// rather than stopping at the first.
func (v *Validate) Run(logger *slog.Logger) error {
	m, err := loader.Load(v.Input)
	if err != nil {
		return err
	}

	logger.Info("Model definition is valid",
		"model", m.Name,
		"objects", len(m.Objects),
		"enums", len(m.Enums))
	return nil
}
