// Package demo wires the ocp and srp examples into runnable scenarios.
package demo

import (
	"github.com/rise-and-shine/solid/logger"
	"github.com/rise-and-shine/solid/srp"
	"github.com/rise-and-shine/solid/tracing"
)

// Config is the full application config loaded by cmd/solid.
type Config struct {
	Logger  logger.Config  `yaml:"logger"`
	Tracing tracing.Config `yaml:"tracing"`
	OCP     OCPConfig      `yaml:"ocp"`
	SRP     SRPConfig      `yaml:"srp"`
}

// OCPConfig selects the commands to run, in order.
type OCPConfig struct {
	// Commands holds kind names. Empty means redo, undo, prepare_log.
	Commands []string `yaml:"commands" validate:"dive,oneof=undo redo prepare_log"`
}

// SRPConfig selects the sink behind the logging service.
type SRPConfig struct {
	Sink  string         `yaml:"sink"  validate:"oneof=file database" default:"database"`
	Sinks srp.SinkConfig `yaml:"sinks"`
}
