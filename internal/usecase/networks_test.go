package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/highwind-nft/highwind/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListNetworks(t *testing.T) {
	ctx := context.Background()

	cfg := newRuntimeConfig(t, nil, credentials())
	cfg.Network = "matic"

	result, err := usecase.NewListNetworks(cfg).Run(ctx, usecase.ListNetworksParams{})
	require.NoError(t, err)
	require.Len(t, result.Networks, 4)

	names := make([]string, 0, len(result.Networks))
	for _, n := range result.Networks {
		names = append(names, n.Profile.Name)
		assert.Equal(t, n.Profile.Name == config.NetworkPolygon, n.Selected, n.Profile.Name)
		assert.NotContains(t, n.Endpoint, "abc123")
		assert.False(t, n.Profile.Signer.Built(), "listing must not build signers")
	}
	assert.Equal(t, []string{"ethereum", "mumbai", "polygon", "rinkeby"}, names)
	assert.Equal(t, "https://polygon-mumbai.infura.io/v3/***", result.Networks[1].Endpoint)
}

func TestSelectNetwork(t *testing.T) {
	ctx := context.Background()
	accounts := []common.Address{common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")}

	newSigner := func() *MockSigner {
		signer := new(MockSigner)
		signer.On("Accounts").Return(accounts)
		signer.On("Endpoint").Return("https://polygon-mainnet.infura.io/v3/***")
		signer.On("Close").Return()
		return signer
	}

	t.Run("builds the named network's signer", func(t *testing.T) {
		signer := newSigner()
		factory := new(MockSignerFactory)
		factory.On("NewSigner", mock.Anything, mock.MatchedBy(func(p config.SignerParams) bool {
			return p.Network == config.NetworkPolygon &&
				p.URL.Reveal() == "https://polygon-mainnet.infura.io/v3/abc123" &&
				p.NumAddresses == 10
		})).Return(signer, nil).Once()

		sink := &MockProgressSink{}
		cfg := newRuntimeConfig(t, factory, credentials())

		result, err := usecase.NewSelectNetwork(cfg, nil, sink).Run(ctx, usecase.SelectNetworkParams{Name: "polygon"})
		require.NoError(t, err)
		assert.Equal(t, accounts, result.Accounts)
		assert.False(t, result.Checked)
		assert.True(t, cfg.Resolved.Networks[config.NetworkPolygon].Signer.Built())
		assert.False(t, cfg.Resolved.Networks[config.NetworkMumbai].Signer.Built())

		require.NotEmpty(t, sink.events)
		assert.True(t, sink.events[0].Spinner)
		assert.False(t, sink.events[len(sink.events)-1].Spinner)

		factory.AssertExpectations(t)
		signer.AssertCalled(t, "Close")
	})

	t.Run("check compares chain id", func(t *testing.T) {
		tests := []struct {
			name      string
			remote    uint64
			wantMatch bool
		}{
			{"match", 137, true},
			{"mismatch", 80001, false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				signer := newSigner()
				signer.On("ChainID", mock.Anything).Return(tt.remote, nil)
				factory := new(MockSignerFactory)
				factory.On("NewSigner", mock.Anything, mock.Anything).Return(signer, nil)

				cfg := newRuntimeConfig(t, factory, credentials())
				result, err := usecase.NewSelectNetwork(cfg, nil, usecase.NopProgress{}).Run(ctx, usecase.SelectNetworkParams{
					Name:  "matic",
					Check: true,
				})
				require.NoError(t, err)
				assert.True(t, result.Checked)
				assert.Equal(t, tt.remote, result.RemoteChainID)
				assert.Equal(t, tt.wantMatch, result.ChainIDMatch)
			})
		}
	})

	t.Run("falls back to the configured network", func(t *testing.T) {
		factory := new(MockSignerFactory)
		factory.On("NewSigner", mock.Anything, mock.MatchedBy(func(p config.SignerParams) bool {
			return p.Network == config.NetworkRinkeby
		})).Return(newSigner(), nil)

		cfg := newRuntimeConfig(t, factory, credentials())
		cfg.Network = "rinkeby"

		result, err := usecase.NewSelectNetwork(cfg, nil, usecase.NopProgress{}).Run(ctx, usecase.SelectNetworkParams{})
		require.NoError(t, err)
		assert.Equal(t, config.NetworkRinkeby, result.Profile.Name)
	})

	t.Run("prompts when nothing is configured", func(t *testing.T) {
		factory := new(MockSignerFactory)
		factory.On("NewSigner", mock.Anything, mock.Anything).Return(newSigner(), nil)
		cfg := newRuntimeConfig(t, factory, credentials())

		selector := new(MockNetworkSelector)
		selector.On("SelectNetwork", ctx, mock.MatchedBy(func(p []*config.NetworkProfile) bool {
			return len(p) == 4
		}), "Select a network").Return(cfg.Resolved.Networks[config.NetworkMumbai], nil)

		result, err := usecase.NewSelectNetwork(cfg, selector, usecase.NopProgress{}).Run(ctx, usecase.SelectNetworkParams{})
		require.NoError(t, err)
		assert.Equal(t, config.NetworkMumbai, result.Profile.Name)
		selector.AssertExpectations(t)
	})

	t.Run("non-interactive without a network", func(t *testing.T) {
		cfg := newRuntimeConfig(t, nil, credentials())
		cfg.NonInteractive = true

		_, err := usecase.NewSelectNetwork(cfg, nil, usecase.NopProgress{}).Run(ctx, usecase.SelectNetworkParams{})
		assert.ErrorContains(t, err, "no network specified")
	})

	t.Run("missing credentials do not reach the factory", func(t *testing.T) {
		factory := new(MockSignerFactory)
		cfg := newRuntimeConfig(t, factory, config.Environment{config.EnvInfuraKey: "abc123"})

		_, err := usecase.NewSelectNetwork(cfg, nil, usecase.NopProgress{}).Run(ctx, usecase.SelectNetworkParams{Name: "ethereum"})

		var missing *config.MissingCredentialsError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, []string{config.EnvMnemonic}, missing.Missing)
		factory.AssertNotCalled(t, "NewSigner", mock.Anything, mock.Anything)
	})

	t.Run("factory error is wrapped", func(t *testing.T) {
		factory := new(MockSignerFactory)
		factory.On("NewSigner", mock.Anything, mock.Anything).Return(nil, errors.New("invalid mnemonic"))
		cfg := newRuntimeConfig(t, factory, credentials())

		_, err := usecase.NewSelectNetwork(cfg, nil, usecase.NopProgress{}).Run(ctx, usecase.SelectNetworkParams{Name: "mumbai"})
		assert.EqualError(t, err, "failed to build signer for mumbai: invalid mnemonic")
	})

	t.Run("unknown network", func(t *testing.T) {
		cfg := newRuntimeConfig(t, nil, credentials())

		_, err := usecase.NewSelectNetwork(cfg, nil, usecase.NopProgress{}).Run(ctx, usecase.SelectNetworkParams{Name: "goerli"})
		assert.ErrorIs(t, err, config.ErrUnknownNetwork)
	})
}
