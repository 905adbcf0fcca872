package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/highwind-nft/highwind/internal/domain/config"
)

// SetConfigParams contains parameters for setting configuration
type SetConfigParams struct {
	Key   string
	Value string
}

// SetConfigResult contains the result of setting configuration
type SetConfigResult struct {
	UpdatedConfig *config.LocalConfig
	ConfigPath    string
	Key           config.ConfigKey
	Value         string
}

// SetConfig is a use case for setting configuration values
type SetConfig struct {
	config *config.RuntimeConfig
	store  LocalConfigStore
}

// NewSetConfig creates a new SetConfig use case
func NewSetConfig(cfg *config.RuntimeConfig, store LocalConfigStore) *SetConfig {
	return &SetConfig{
		config: cfg,
		store:  store,
	}
}

// Run executes the set config use case
func (uc *SetConfig) Run(ctx context.Context, params SetConfigParams) (*SetConfigResult, error) {
	key := strings.ToLower(params.Key)
	if !config.IsValidConfigKey(key) {
		return nil, unknownConfigKeyError(params.Key)
	}
	normalizedKey := config.NormalizeConfigKey(key)

	local, err := uc.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	value := params.Value
	switch normalizedKey {
	case config.ConfigKeyNetwork:
		profile, err := uc.config.Resolved.Network(value)
		if err != nil {
			return nil, err
		}
		value = profile.Name
		local.Network = value
	case config.ConfigKeyIntent:
		mode := config.IntentMode(strings.ToLower(value))
		if !mode.Valid() {
			return nil, fmt.Errorf("invalid intent mode '%s' (expected legacy, flag or auto)", params.Value)
		}
		value = string(mode)
		local.Intent = mode
	}

	if err := uc.store.Save(ctx, local); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	return &SetConfigResult{
		UpdatedConfig: local,
		ConfigPath:    uc.store.GetPath(),
		Key:           normalizedKey,
		Value:         value,
	}, nil
}

func unknownConfigKeyError(key string) error {
	var validKeys []string
	for _, k := range config.ValidConfigKeys() {
		if k == config.ConfigKeyNetwork {
			validKeys = append(validKeys, string(k)+" (net)")
		} else {
			validKeys = append(validKeys, string(k))
		}
	}
	return fmt.Errorf("unknown config key: %s\nAvailable keys: %s", key, strings.Join(validKeys, ", "))
}
