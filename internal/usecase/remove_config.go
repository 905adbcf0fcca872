package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/highwind-nft/highwind/internal/domain/config"
)

// RemoveConfigParams contains parameters for removing configuration
type RemoveConfigParams struct {
	Key string
}

// RemoveConfigResult contains the result of removing configuration
type RemoveConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	RemovedValue  string
}

// RemoveConfig is a use case for removing configuration values
type RemoveConfig struct {
	store LocalConfigStore
}

// NewRemoveConfig creates a new RemoveConfig use case
func NewRemoveConfig(store LocalConfigStore) *RemoveConfig {
	return &RemoveConfig{
		store: store,
	}
}

// Run executes the remove config use case
func (uc *RemoveConfig) Run(ctx context.Context, params RemoveConfigParams) (*RemoveConfigResult, error) {
	if !uc.store.Exists() {
		path := uc.store.GetPath()
		if cwd, err := os.Getwd(); err == nil {
			if relPath, err := filepath.Rel(cwd, path); err == nil {
				path = relPath
			}
		}
		return nil, fmt.Errorf("no config file found at %s", path)
	}

	key := strings.ToLower(params.Key)
	if !config.IsValidConfigKey(key) {
		return nil, unknownConfigKeyError(params.Key)
	}
	normalizedKey := config.NormalizeConfigKey(key)

	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var removedValue string
	switch normalizedKey {
	case config.ConfigKeyNetwork:
		removedValue = local.Network
		local.Network = ""
	case config.ConfigKeyIntent:
		removedValue = string(local.Intent)
		local.Intent = config.DefaultLocalConfig().Intent
	}

	if err := uc.store.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &RemoveConfigResult{
		UpdatedConfig: local,
		ConfigPath:    uc.store.GetPath(),
		Key:           normalizedKey,
		RemovedValue:  removedValue,
	}, nil
}
