package config

import (
	"encoding/json"
	"log/slog"
)

const redacted = "[redacted]"

// Secret holds a sensitive value. Every printable or serialisable form is
// redacted; use Reveal to get the raw value.
type Secret string

// Reveal returns the raw secret value
func (s Secret) Reveal() string {
	return string(s)
}

// IsSet reports whether the secret has a non-empty value
func (s Secret) IsSet() bool {
	return s != ""
}

func (s Secret) String() string {
	if !s.IsSet() {
		return ""
	}
	return redacted
}

func (s Secret) GoString() string {
	return s.String()
}

// LogValue implements slog.LogValuer
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(s.String())
}

// MarshalJSON implements json.Marshaler
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Secrets are the credentials a remote network signer needs.
type Secrets struct {
	Mnemonic Secret
	APIKey   Secret
}

// SecretsFromEnvironment extracts the mnemonic and node API key
func SecretsFromEnvironment(env Environment) Secrets {
	return Secrets{
		Mnemonic: Secret(env.Get(EnvMnemonic)),
		APIKey:   Secret(env.Get(EnvInfuraKey)),
	}
}

// Complete reports whether both secrets are present
func (s Secrets) Complete() bool {
	return s.Mnemonic.IsSet() && s.APIKey.IsSet()
}

// Missing returns the environment variable names of absent secrets
func (s Secrets) Missing() []string {
	var missing []string
	if !s.Mnemonic.IsSet() {
		missing = append(missing, EnvMnemonic)
	}
	if !s.APIKey.IsSet() {
		missing = append(missing, EnvInfuraKey)
	}
	return missing
}
