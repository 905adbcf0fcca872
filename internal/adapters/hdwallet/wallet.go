package hdwallet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/wire"
	"github.com/highwind-nft/highwind/internal/domain/config"
)

// WalletSet provides the default signer factory
var WalletSet = wire.NewSet(
	NewFactory,
	wire.Bind(new(config.SignerFactory), new(*Factory)),
)

// Factory builds HD wallets from a mnemonic and a node endpoint
type Factory struct {
	log *slog.Logger
}

// NewFactory creates a new wallet factory
func NewFactory(log *slog.Logger) *Factory {
	return &Factory{log: log}
}

// NewSigner derives the configured accounts. The node connection is opened
// on first use.
func (f *Factory) NewSigner(ctx context.Context, params config.SignerParams) (config.Signer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mnemonic, err := NormalizeMnemonic(params.Mnemonic.Reveal())
	if err != nil {
		return nil, err
	}

	count := params.NumAddresses
	if count < 1 {
		count = 1
	}

	addresses, err := DeriveAccounts(NewSeed(mnemonic, ""), params.AddressIndex, count)
	if err != nil {
		return nil, fmt.Errorf("failed to derive accounts: %w", err)
	}

	f.log.Debug("wallet built",
		"network", params.Network,
		"endpoint", params.RedactedURL(),
		"accounts", len(addresses),
	)

	return &Wallet{
		network:  params.Network,
		url:      params.URL,
		apiKey:   params.APIKey,
		endpoint: params.RedactedURL(),
		accounts: addresses,
	}, nil
}

// Wallet is the Signer produced by Factory
type Wallet struct {
	network  string
	url      config.Secret
	apiKey   config.Secret
	endpoint string
	accounts []common.Address

	client *ethclient.Client
}

func (w *Wallet) Network() string {
	return w.network
}

func (w *Wallet) Accounts() []common.Address {
	return append([]common.Address(nil), w.accounts...)
}

func (w *Wallet) Endpoint() string {
	return w.endpoint
}

// ChainID asks the node for its chain ID
func (w *Wallet) ChainID(ctx context.Context) (uint64, error) {
	if w.client == nil {
		client, err := ethclient.DialContext(ctx, w.url.Reveal())
		if err != nil {
			return 0, fmt.Errorf("failed to connect to %s: %w", w.endpoint, w.redact(err))
		}
		w.client = client
	}

	chainID, err := w.client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID from %s: %w", w.endpoint, w.redact(err))
	}
	return chainID.Uint64(), nil
}

// redact masks the API key in transport errors, which quote the full URL
func (w *Wallet) redact(err error) error {
	if err == nil || !w.apiKey.IsSet() {
		return err
	}
	return &redactedError{err: err, secret: w.apiKey.Reveal()}
}

func (w *Wallet) Close() {
	if w.client != nil {
		w.client.Close()
		w.client = nil
	}
}

// redactedError reports err with every occurrence of secret masked
type redactedError struct {
	err    error
	secret string
}

func (e *redactedError) Error() string {
	return strings.ReplaceAll(e.err.Error(), e.secret, "***")
}

func (e *redactedError) Unwrap() error {
	return e.err
}

var _ config.SignerFactory = (*Factory)(nil)
var _ config.Signer = (*Wallet)(nil)
