package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/highwind-nft/highwind/internal/domain/config"
)

// SelectNetworkParams contains parameters for selecting a network
type SelectNetworkParams struct {
	// Name of the network; falls back to the configured network, then to
	// an interactive prompt
	Name string
	// Check queries the node for its chain ID
	Check bool
}

// SelectNetworkResult contains the built signer's details
type SelectNetworkResult struct {
	Profile  *config.NetworkProfile
	Accounts []common.Address
	Endpoint string

	Checked       bool
	RemoteChainID uint64
	ChainIDMatch  bool
}

// SelectNetwork selects a profile and invokes its deferred signer
type SelectNetwork struct {
	config   *config.RuntimeConfig
	selector NetworkSelector
	progress ProgressSink
}

// NewSelectNetwork creates a new SelectNetwork use case
func NewSelectNetwork(cfg *config.RuntimeConfig, selector NetworkSelector, progress ProgressSink) *SelectNetwork {
	return &SelectNetwork{
		config:   cfg,
		selector: selector,
		progress: progress,
	}
}

// Run executes the select network use case
func (uc *SelectNetwork) Run(ctx context.Context, params SelectNetworkParams) (*SelectNetworkResult, error) {
	profile, err := uc.resolveProfile(ctx, params.Name)
	if err != nil {
		return nil, err
	}

	if !profile.RequiresSigner() {
		return nil, fmt.Errorf("%w: %s", config.ErrSignerUnavailable, profile.Name)
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "signer",
		Message: fmt.Sprintf("Building signer for %s", profile.Name),
		Spinner: true,
	})

	signer, err := profile.Signer.Build(ctx)
	if err != nil {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "signer"})
		return nil, err
	}
	defer signer.Close()

	result := &SelectNetworkResult{
		Profile:  profile,
		Accounts: signer.Accounts(),
		Endpoint: signer.Endpoint(),
	}

	if params.Check {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "check",
			Message: fmt.Sprintf("Querying chain ID from %s", result.Endpoint),
			Spinner: true,
		})

		chainID, err := signer.ChainID(ctx)
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "check"})
		if err != nil {
			return nil, err
		}

		result.Checked = true
		result.RemoteChainID = chainID
		result.ChainIDMatch = chainID == profile.EffectiveChainID()
	} else {
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "signer"})
	}

	return result, nil
}

func (uc *SelectNetwork) resolveProfile(ctx context.Context, name string) (*config.NetworkProfile, error) {
	if name == "" {
		name = uc.config.Network
	}
	if name != "" {
		return uc.config.Resolved.Network(name)
	}

	if uc.config.NonInteractive {
		return nil, fmt.Errorf("no network specified; pass a network name or --network")
	}

	var remote []*config.NetworkProfile
	for _, profile := range uc.config.Resolved.Profiles() {
		if profile.RequiresSigner() {
			remote = append(remote, profile)
		}
	}
	return uc.selector.SelectNetwork(ctx, remote, "Select a network")
}
