package config

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/highwind-nft/highwind/internal/domain/config"
)

// DefaultSolcVersion is the compiler version selected when highwind.toml
// does not pick one
const DefaultSolcVersion = "0.8.0"

// networkDefinition is the static description of a supported network
type networkDefinition struct {
	name          string
	host          string // node host; empty means no remote signer
	networkID     uint64
	chainID       uint64
	confirmations int
	timeoutBlocks int
	skipDryRun    bool
	gasLimit      uint64
	gasPrice      int64
	addressIndex  int
	numAddresses  int
	explorerURL   string
	faucetURL     string
	nativeToken   string
}

var networkCatalog = []networkDefinition{
	{
		name:         config.NetworkRinkeby,
		host:         "rinkeby.infura.io",
		networkID:    4,
		skipDryRun:   false,
		addressIndex: 0,
		numAddresses: 1,
		explorerURL:  "https://rinkeby.etherscan.io",
		faucetURL:    "https://faucet.rinkeby.io/",
		nativeToken:  "ETH",
	},
	{
		name:          config.NetworkMumbai,
		host:          "polygon-mumbai.infura.io",
		networkID:     80001,
		confirmations: 2,
		timeoutBlocks: 200,
		skipDryRun:    true,
		addressIndex:  0,
		numAddresses:  10,
		explorerURL:   "https://explorer-mumbai.maticvigil.com",
		faucetURL:     "https://faucet.matic.network/",
		nativeToken:   "MATIC",
	},
	{
		name:          config.NetworkPolygon,
		host:          "polygon-mainnet.infura.io",
		networkID:     137,
		chainID:       137,
		confirmations: 2,
		timeoutBlocks: 200,
		skipDryRun:    true,
		addressIndex:  0,
		numAddresses:  10,
		explorerURL:   "https://polygonscan.com",
		nativeToken:   "MATIC",
	},
	{
		name:         config.NetworkEthereum,
		host:         "mainnet.infura.io",
		networkID:    1,
		skipDryRun:   false,
		gasLimit:     5000000,
		gasPrice:     5000000000,
		addressIndex: 0,
		numAddresses: 1,
		explorerURL:  "https://etherscan.io",
		nativeToken:  "ETH",
	},
}

// InfuraEndpoint builds the node URL for host and apiKey
func InfuraEndpoint(host, apiKey string) string {
	return fmt.Sprintf("https://%s/v3/%s", host, apiKey)
}

// endpointWithKey appends apiKey as the last path segment of base
func endpointWithKey(base, apiKey string) string {
	return strings.TrimSuffix(base, "/") + "/" + apiKey
}

// DefaultCompiler returns the compiler selection used when none is configured
func DefaultCompiler() config.CompilerSelection {
	return config.CompilerSelection{
		Name:    "solc",
		Version: DefaultSolcVersion,
	}
}

// SupportedNetworks returns the catalog's network names in declaration order
func SupportedNetworks() []string {
	names := make([]string, len(networkCatalog))
	for i, def := range networkCatalog {
		names[i] = def.name
	}
	return names
}

// RemoteSignerNetworks returns the set of networks whose profiles need a signer
func RemoteSignerNetworks() map[string]bool {
	set := make(map[string]bool, len(networkCatalog))
	for _, def := range networkCatalog {
		if def.host != "" {
			set[def.name] = true
		}
	}
	return set
}

// profile builds the NetworkProfile for def. The signer is deferred; the
// factory is not called here. A non-empty endpoint replaces the Infura host.
func (def networkDefinition) profile(factory config.SignerFactory, secrets config.Secrets, endpoint string) *config.NetworkProfile {
	p := &config.NetworkProfile{
		Name:          def.name,
		NetworkID:     def.networkID,
		ChainID:       def.chainID,
		Confirmations: def.confirmations,
		TimeoutBlocks: def.timeoutBlocks,
		SkipDryRun:    def.skipDryRun,
		ExplorerURL:   def.explorerURL,
		FaucetURL:     def.faucetURL,
		NativeToken:   def.nativeToken,
	}

	if def.gasLimit != 0 || def.gasPrice != 0 {
		p.Gas = &config.GasSettings{
			Limit: def.gasLimit,
			Price: big.NewInt(def.gasPrice),
		}
	}

	if def.host != "" {
		url := InfuraEndpoint(def.host, secrets.APIKey.Reveal())
		if endpoint != "" {
			url = endpointWithKey(endpoint, secrets.APIKey.Reveal())
		}
		p.Signer = config.NewDeferredSigner(factory, config.SignerParams{
			Network:      def.name,
			Mnemonic:     secrets.Mnemonic,
			APIKey:       secrets.APIKey,
			URL:          config.Secret(url),
			AddressIndex: def.addressIndex,
			NumAddresses: def.numAddresses,
		})
	}

	return p
}
