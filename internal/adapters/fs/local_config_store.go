package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/highwind-nft/highwind/internal/usecase"
)

// LocalConfigFileName is the file written by `highwind config set`
const LocalConfigFileName = "config.local.json"

// LocalConfigStoreAdapter implements LocalConfigStore using the file system
type LocalConfigStoreAdapter struct {
	configPath string
}

// NewLocalConfigStoreAdapter creates a new LocalConfigStoreAdapter
func NewLocalConfigStoreAdapter(cfg *config.RuntimeConfig) *LocalConfigStoreAdapter {
	return &LocalConfigStoreAdapter{
		configPath: filepath.Join(cfg.DataDir, LocalConfigFileName),
	}
}

// Exists checks if the config file exists
func (s *LocalConfigStoreAdapter) Exists() bool {
	_, err := os.Stat(s.configPath)
	return !os.IsNotExist(err)
}

// Load reads the configuration from the file
func (s *LocalConfigStoreAdapter) Load(ctx context.Context) (*config.LocalConfig, error) {
	if !s.Exists() {
		return config.DefaultLocalConfig(), nil
	}

	data, err := os.ReadFile(s.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var local config.LocalConfig
	if err := json.Unmarshal(data, &local); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if local.Intent == "" {
		local.Intent = config.DefaultLocalConfig().Intent
	}

	return &local, nil
}

// Save writes the configuration to the file
func (s *LocalConfigStoreAdapter) Save(ctx context.Context, local *config.LocalConfig) error {
	if err := os.MkdirAll(filepath.Dir(s.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(local, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(s.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetPath returns the path to the config file
func (s *LocalConfigStoreAdapter) GetPath() string {
	return s.configPath
}

var _ usecase.LocalConfigStore = (*LocalConfigStoreAdapter)(nil)
