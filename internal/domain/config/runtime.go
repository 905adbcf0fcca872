package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network    string // selected network name, "" if not specified
	IntentMode IntentMode

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration
	StrictExit     bool // exit non-zero when credentials are missing

	// Config source tracking
	ConfigSource string // "highwind.toml" or "" when only defaults apply

	// Resolved configuration
	Resolved *ResolvedConfig
}

// IntentMode selects how remote-signer intent is detected
type IntentMode string

const (
	// IntentLegacy matches network-name substrings in the serialized argv
	IntentLegacy IntentMode = "legacy"
	// IntentFlag parses a structured --network flag
	IntentFlag IntentMode = "flag"
	// IntentAuto uses legacy under npm and flag otherwise
	IntentAuto IntentMode = "auto"
)

// Valid reports whether m is a known mode
func (m IntentMode) Valid() bool {
	switch m {
	case IntentLegacy, IntentFlag, IntentAuto:
		return true
	}
	return false
}
