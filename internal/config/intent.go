package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/spf13/pflag"
)

// Legacy tokens for the public testnet and mainnet invocations
var legacyIntentTokens = []string{"rinkeby", "live"}

// IntentPredicate decides whether an invocation targets a remote network
// and therefore needs a funded signer
type IntentPredicate interface {
	NeedsRemoteSigner(inv config.Invocation) bool
}

// IntentFunc adapts a function to IntentPredicate
type IntentFunc func(inv config.Invocation) bool

// NeedsRemoteSigner calls f
func (f IntentFunc) NeedsRemoteSigner(inv config.Invocation) bool {
	return f(inv)
}

// SubstringIntent matches any token as a substring of the serialized
// invocation. Any occurrence counts, including inside unrelated arguments
// such as a directory path.
func SubstringIntent(tokens ...string) IntentPredicate {
	return IntentFunc(func(inv config.Invocation) bool {
		raw := inv.Serialized()
		if raw == "" {
			return false
		}
		for _, token := range tokens {
			if strings.Contains(raw, token) {
				return true
			}
		}
		return false
	})
}

// LegacyIntent matches "rinkeby" or "live" anywhere in the serialized invocation
func LegacyIntent() IntentPredicate {
	return SubstringIntent(legacyIntentTokens...)
}

// NetworkFlagIntent parses --network/-n out of the structured arguments and
// reports whether the selected network is one of remote
func NetworkFlagIntent(remote map[string]bool) IntentPredicate {
	return IntentFunc(func(inv config.Invocation) bool {
		network := SelectedNetwork(inv.Args)
		if network == "" {
			return false
		}
		return remote[config.CanonicalNetworkName(network)]
	})
}

// AutoIntent uses the legacy heuristic when running under npm and the
// structured flag otherwise
func AutoIntent(remote map[string]bool) IntentPredicate {
	legacy := LegacyIntent()
	flag := NetworkFlagIntent(remote)
	return IntentFunc(func(inv config.Invocation) bool {
		if inv.RawArgv != "" {
			return legacy.NeedsRemoteSigner(inv)
		}
		return flag.NeedsRemoteSigner(inv)
	})
}

// SelectedNetwork returns the value of --network/-n in args, or ""
func SelectedNetwork(args []string) string {
	fs := pflag.NewFlagSet("intent", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	network := fs.StringP("network", "n", "", "")

	if err := fs.Parse(args); err != nil {
		return ""
	}
	return *network
}

// ParseIntentMode validates a mode name
func ParseIntentMode(mode string) (config.IntentMode, error) {
	m := config.IntentMode(strings.ToLower(strings.TrimSpace(mode)))
	if m == "" {
		return config.IntentLegacy, nil
	}
	if !m.Valid() {
		return "", fmt.Errorf("unknown intent mode '%s' (expected legacy, flag or auto)", mode)
	}
	return m, nil
}

// IntentForMode returns the predicate implementing mode
func IntentForMode(mode config.IntentMode) IntentPredicate {
	switch mode {
	case config.IntentFlag:
		return NetworkFlagIntent(RemoteSignerNetworks())
	case config.IntentAuto:
		return AutoIntent(RemoteSignerNetworks())
	default:
		return LegacyIntent()
	}
}
