package app

import (
	"github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/highwind-nft/highwind/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Use cases
	ShowConfig    *usecase.ShowConfig
	ExportConfig  *usecase.ExportConfig
	SetConfig     *usecase.SetConfig
	RemoveConfig  *usecase.RemoveConfig
	ListNetworks  *usecase.ListNetworks
	SelectNetwork *usecase.SelectNetwork
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	showConfig *usecase.ShowConfig,
	exportConfig *usecase.ExportConfig,
	setConfig *usecase.SetConfig,
	removeConfig *usecase.RemoveConfig,
	listNetworks *usecase.ListNetworks,
	selectNetwork *usecase.SelectNetwork,
) (*App, error) {
	return &App{
		Config:        cfg,
		ShowConfig:    showConfig,
		ExportConfig:  exportConfig,
		SetConfig:     setConfig,
		RemoveConfig:  removeConfig,
		ListNetworks:  listNetworks,
		SelectNetwork: selectNetwork,
	}, nil
}
