package config

import "strings"

// Environment variable names consumed by the resolver
const (
	EnvMnemonic       = "MNEMONIC"
	EnvInfuraKey      = "INFURA_KEY"
	EnvContractsBuild = "CONTRACTS_BUILD"
	EnvContractsDir   = "CONTRACTS_DIR"
	EnvNpmConfigArgv  = "npm_config_argv"
)

// Environment maps variable names to values. It is passed to the resolver
// explicitly instead of reading process state.
type Environment map[string]string

// Get returns the value of key, or "" when absent
func (e Environment) Get(key string) string {
	return e[key]
}

// Lookup returns the value of key and whether it was present
func (e Environment) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Merge returns a new Environment with other layered on top of e
func (e Environment) Merge(other Environment) Environment {
	merged := make(Environment, len(e)+len(other))
	for k, v := range e {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

// ParseEnviron converts KEY=VALUE pairs (as from os.Environ) into an Environment
func ParseEnviron(pairs []string) Environment {
	env := make(Environment, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Invocation describes how the process was invoked.
type Invocation struct {
	// RawArgv is the serialized invocation, as npm exposes it in npm_config_argv
	RawArgv string
	// Args is the structured argument list
	Args []string
}

// NewInvocation builds an Invocation from the environment and argument list
func NewInvocation(env Environment, args []string) Invocation {
	return Invocation{
		RawArgv: env.Get(EnvNpmConfigArgv),
		Args:    args,
	}
}

// Serialized returns RawArgv when set, otherwise Args joined by spaces
func (i Invocation) Serialized() string {
	if i.RawArgv != "" {
		return i.RawArgv
	}
	return strings.Join(i.Args, " ")
}
