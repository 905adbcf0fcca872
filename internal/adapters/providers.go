package adapters

import (
	"github.com/google/wire"
	"github.com/highwind-nft/highwind/internal/adapters/fs"
	"github.com/highwind-nft/highwind/internal/adapters/hdwallet"
	"github.com/highwind-nft/highwind/internal/adapters/interactive"
	"github.com/highwind-nft/highwind/internal/usecase"
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.NetworkSelector), new(*interactive.SelectorAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	InteractiveSet,
	hdwallet.WalletSet,
)
