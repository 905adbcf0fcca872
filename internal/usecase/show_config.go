package usecase

import (
	"context"

	"github.com/highwind-nft/highwind/internal/domain/config"
)

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Resolved     *config.ResolvedConfig
	IntentMode   config.IntentMode
	Network      string
	ConfigSource string

	Local       *config.LocalConfig
	LocalPath   string
	LocalExists bool
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	config *config.RuntimeConfig
	store  LocalConfigStore
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, store LocalConfigStore) *ShowConfig {
	return &ShowConfig{
		config: cfg,
		store:  store,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &ShowConfigResult{
		Resolved:     uc.config.Resolved,
		IntentMode:   uc.config.IntentMode,
		Network:      uc.config.Network,
		ConfigSource: uc.config.ConfigSource,
		Local:        local,
		LocalPath:    uc.store.GetPath(),
		LocalExists:  uc.store.Exists(),
	}, nil
}
