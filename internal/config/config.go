// Package config declares the CLI surface. Values resolve in kong's priority
// order: flags, then environment, then configuration files.
package config

import (
	"mdlgen/internal/cmd"
)

// LogConfig holds the logging flags shared by all commands.
type LogConfig struct {
	Level     string `help:"Log level: trace, debug, info, warn, error" enum:"trace,debug,info,warn,error" default:"info" env:"MDLGEN_LOG_LEVEL"`
	File      string `help:"Write logs to this file instead of the console" env:"MDLGEN_LOG_FILE"`
	TraceFile string `help:"Write every rendered artifact to this trace file" env:"MDLGEN_LOG_TRACE_FILE"`
}

// CLI is the root command tree.
type CLI struct {
	Config string    `help:"Path to a configuration file (JSON, YAML or TOML)" env:"MDLGEN_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" help:"Generate sources from a model definition"`
	Validate cmd.Validate      `cmd:"" help:"Validate a model definition"`
	Schema   cmd.Schema        `cmd:"" help:"Export a model definition as JSON Schema"`
	Cfg      cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration utilities"`
}
