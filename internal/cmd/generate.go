package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"mdlgen/internal/generator"
	"mdlgen/internal/loader"
	"mdlgen/internal/log"
)

type Generate struct {
	Input    string `arg:"" name:"input" help:"Model definition file (.json, .yaml or .yml)" type:"existingfile" env:"MDLGEN_INPUT"`
	Template string `help:"Target template: python-pydantic, python-pydantic-xml, python-dataclass, python-sdrdm, json-schema, or 'all'" default:"python-pydantic" enum:"python-pydantic,python-pydantic-xml,python-dataclass,python-sdrdm,json-schema,all" env:"MDLGEN_TEMPLATE"`
	Output   string `short:"o" help:"Output directory, or '-' to write a single template to stdout" default:"-" env:"MDLGEN_OUTPUT"`
}

// Run is called by kong when the generate command is executed.
func (g *Generate) Run(logger *slog.Logger, trace log.TraceLogger) error {
	logger.Info("Starting generation", "input", g.Input, "template", g.Template, "output", g.Output)

	m, err := loader.Load(g.Input)
	if err != nil {
		return err
	}

	if g.Output == "-" {
		if g.Template == "all" {
			return fmt.Errorf("template 'all' requires an output directory")
		}
		source, err := generator.Render(g.Template, m)
		if err != nil {
			return err
		}
		trace.Log(g.Template, []byte(source))
		_, err = os.Stdout.WriteString(source)
		return err
	}

	gen := generator.New(g.Output, logger, trace)
	if g.Template == "all" {
		return gen.GenAll(m)
	}
	return gen.GenerateBackend(g.Template, m)
}
