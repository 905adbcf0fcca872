package config

import (
	"math/big"
	"strings"
)

// Network names
const (
	NetworkRinkeby  = "rinkeby"
	NetworkMumbai   = "mumbai"
	NetworkPolygon  = "polygon"
	NetworkEthereum = "ethereum"
)

// NetworkAliases maps alternative names to profile names
var NetworkAliases = map[string]string{
	"live":    NetworkEthereum,
	"mainnet": NetworkEthereum,
	"matic":   NetworkPolygon,
}

// CanonicalNetworkName lowercases name and resolves aliases
func CanonicalNetworkName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := NetworkAliases[name]; ok {
		return canonical
	}
	return name
}

// NetworkProfile describes how the deploy tool talks to one remote network
type NetworkProfile struct {
	Name          string
	NetworkID     uint64
	ChainID       uint64 // 0 when not declared
	Confirmations int
	TimeoutBlocks int
	SkipDryRun    bool
	Gas           *GasSettings
	Signer        *DeferredSigner

	ExplorerURL string
	FaucetURL   string
	NativeToken string
}

// GasSettings are fixed gas parameters for a network
type GasSettings struct {
	Limit uint64
	Price *big.Int // wei
}

// RequiresSigner reports whether the profile needs a funded remote signer
func (p *NetworkProfile) RequiresSigner() bool {
	return p.Signer != nil
}

// EffectiveChainID returns ChainID, falling back to NetworkID
func (p *NetworkProfile) EffectiveChainID() uint64 {
	if p.ChainID != 0 {
		return p.ChainID
	}
	return p.NetworkID
}

// IsTestnet reports whether the network hands out test funds
func (p *NetworkProfile) IsTestnet() bool {
	return p.FaucetURL != ""
}
