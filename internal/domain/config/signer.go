package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Signer is a wallet-backed provider for one remote network. It is built by
// a SignerFactory only when its network is selected.
type Signer interface {
	Network() string
	Accounts() []common.Address
	// Endpoint returns the node URL with the API key redacted
	Endpoint() string
	ChainID(ctx context.Context) (uint64, error)
	Close()
}

// SignerFactory constructs signers from a mnemonic and a node endpoint.
// NewSigner returns a non-nil Signer or an error.
type SignerFactory interface {
	NewSigner(ctx context.Context, params SignerParams) (Signer, error)
}

// SignerParams parameterise a SignerFactory call
type SignerParams struct {
	Network      string
	Mnemonic     Secret
	APIKey       Secret
	URL          Secret // embeds the API key
	AddressIndex int
	NumAddresses int
}

// RedactedURL returns URL with the API key segment masked
func (p SignerParams) RedactedURL() string {
	url := p.URL.Reveal()
	key := p.APIKey.Reveal()
	switch {
	case key == "":
		return url
	case strings.HasSuffix(url, "/"+key):
		return strings.TrimSuffix(url, key) + "***"
	default:
		return strings.ReplaceAll(url, key, "***")
	}
}

// DeferredSigner stores everything needed to build a Signer without
// building it. Build runs the factory at most once; the outcome is kept.
// It is not safe for concurrent use.
type DeferredSigner struct {
	factory SignerFactory
	params  SignerParams

	built  bool
	signer Signer
	err    error
}

// NewDeferredSigner returns a DeferredSigner for params
func NewDeferredSigner(factory SignerFactory, params SignerParams) *DeferredSigner {
	return &DeferredSigner{
		factory: factory,
		params:  params,
	}
}

// Params returns the parameters the factory will be called with
func (d *DeferredSigner) Params() SignerParams {
	return d.params
}

// Built reports whether Build has run
func (d *DeferredSigner) Built() bool {
	return d.built
}

// Build constructs the signer. Missing credentials are detected here, at
// invocation time, and the factory is not called in that case.
func (d *DeferredSigner) Build(ctx context.Context) (Signer, error) {
	if d.built {
		return d.signer, d.err
	}
	d.built = true

	secrets := Secrets{Mnemonic: d.params.Mnemonic, APIKey: d.params.APIKey}
	if !secrets.Complete() {
		d.err = &MissingCredentialsError{Missing: secrets.Missing(), Network: d.params.Network}
		return nil, d.err
	}
	if d.factory == nil {
		d.err = fmt.Errorf("%w: no signer factory configured for %s", ErrSignerUnavailable, d.params.Network)
		return nil, d.err
	}

	d.signer, d.err = d.factory.NewSigner(ctx, d.params)
	switch {
	case d.err != nil:
		d.signer = nil
		d.err = fmt.Errorf("failed to build signer for %s: %w", d.params.Network, d.err)
	case d.signer == nil:
		d.err = fmt.Errorf("%w: factory returned no signer for %s", ErrSignerUnavailable, d.params.Network)
	}
	return d.signer, d.err
}
