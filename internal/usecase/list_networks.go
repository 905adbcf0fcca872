package usecase

import (
	"context"

	"github.com/highwind-nft/highwind/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Remote restricts the list to networks that need a signer
	Remote bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkSummary
}

// NetworkSummary is one row of the network list
type NetworkSummary struct {
	Profile  *config.NetworkProfile
	Endpoint string // redacted
	Selected bool
}

// ListNetworks is a use case for listing network profiles
type ListNetworks struct {
	config *config.RuntimeConfig
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig) *ListNetworks {
	return &ListNetworks{
		config: cfg,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	selected := config.CanonicalNetworkName(uc.config.Network)

	var networks []NetworkSummary
	for _, profile := range uc.config.Resolved.Profiles() {
		if params.Remote && !profile.RequiresSigner() {
			continue
		}

		summary := NetworkSummary{
			Profile:  profile,
			Selected: profile.Name == selected,
		}
		if profile.RequiresSigner() {
			summary.Endpoint = profile.Signer.Params().RedactedURL()
		}
		networks = append(networks, summary)
	}

	return &ListNetworksResult{
		Networks: networks,
	}, nil
}
