package config

import "time"

// CompilerSelection picks the contract compiler. The values are passed
// through to the deploy tool untouched.
type CompilerSelection struct {
	Name     string            `json:"-" yaml:"-" toml:"name,omitempty"`
	Version  string            `json:"version" yaml:"version" toml:"version,omitempty"`
	Settings *CompilerSettings `json:"settings,omitempty" yaml:"settings,omitempty" toml:"settings,omitempty"`
}

// CompilerSettings are optional compiler options
type CompilerSettings struct {
	Optimizer  *OptimizerSettings `json:"optimizer,omitempty" yaml:"optimizer,omitempty" toml:"optimizer,omitempty"`
	EVMVersion string             `json:"evmVersion,omitempty" yaml:"evmVersion,omitempty" toml:"evm_version,omitempty"`
}

// OptimizerSettings toggles the optimizer and its run count
type OptimizerSettings struct {
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs" toml:"runs"`
}

// TestOptions are passed to the test runner
type TestOptions struct {
	Timeout  time.Duration
	Reporter string
}
