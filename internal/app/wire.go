//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/highwind-nft/highwind/internal/adapters"
	internalconfig "github.com/highwind-nft/highwind/internal/config"
	"github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/highwind-nft/highwind/internal/logging"
	"github.com/highwind-nft/highwind/internal/usecase"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, env config.Environment, inv config.Invocation, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		logging.LoggingSet,
		internalconfig.ConfigSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowConfig,
		usecase.NewExportConfig,
		usecase.NewSetConfig,
		usecase.NewRemoveConfig,
		usecase.NewListNetworks,
		usecase.NewSelectNetwork,

		// App
		NewApp,
	)
	return nil, nil
}
