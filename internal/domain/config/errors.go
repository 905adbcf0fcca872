package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration resolution
var (
	// ErrMissingCredentials is returned when a remote network needs a signer
	// but the mnemonic or API key is absent
	ErrMissingCredentials = errors.New("missing credentials for remote network")

	// ErrUnknownNetwork is returned when a network name matches no profile
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrSignerUnavailable is returned when a profile has no deferred signer
	ErrSignerUnavailable = errors.New("network has no signer")
)

// MissingCredentialsDiagnostic is the line written to stderr on the halt path
const MissingCredentialsDiagnostic = "Please set a mnemonic and INFURA_KEY."

// MissingCredentialsError is the MissingCredentialsForRemoteNetwork error kind
type MissingCredentialsError struct {
	// Missing lists the absent environment variables
	Missing []string
	// Network is set when the error was raised while building a signer
	Network string
}

func (e *MissingCredentialsError) Error() string {
	return MissingCredentialsDiagnostic
}

// Detail returns a longer message naming what is missing
func (e *MissingCredentialsError) Detail() string {
	msg := MissingCredentialsDiagnostic
	if len(e.Missing) > 0 {
		msg += " Missing: " + strings.Join(e.Missing, ", ")
	}
	if e.Network != "" {
		msg += fmt.Sprintf(" (network %s)", e.Network)
	}
	return msg
}

func (e *MissingCredentialsError) Unwrap() error {
	return ErrMissingCredentials
}

// UnknownNetworkError reports a network name with no matching profile
type UnknownNetworkError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownNetworkError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown network '%s'", e.Name)
	}
	return fmt.Sprintf("unknown network '%s' - did you mean: %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e *UnknownNetworkError) Unwrap() error {
	return ErrUnknownNetwork
}
