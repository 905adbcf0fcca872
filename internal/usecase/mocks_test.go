package usecase_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	internalconfig "github.com/highwind-nft/highwind/internal/config"
	"github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/highwind-nft/highwind/internal/usecase"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockLocalConfigStore is a mock implementation of LocalConfigStore
type MockLocalConfigStore struct {
	mock.Mock
}

func (m *MockLocalConfigStore) Exists() bool {
	return m.Called().Bool(0)
}

func (m *MockLocalConfigStore) Load(ctx context.Context) (*config.LocalConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.LocalConfig), args.Error(1)
}

func (m *MockLocalConfigStore) Save(ctx context.Context, local *config.LocalConfig) error {
	return m.Called(ctx, local).Error(0)
}

func (m *MockLocalConfigStore) GetPath() string {
	return m.Called().String(0)
}

// MockNetworkSelector is a mock implementation of NetworkSelector
type MockNetworkSelector struct {
	mock.Mock
}

func (m *MockNetworkSelector) SelectNetwork(ctx context.Context, profiles []*config.NetworkProfile, prompt string) (*config.NetworkProfile, error) {
	args := m.Called(ctx, profiles, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.NetworkProfile), args.Error(1)
}

// MockSignerFactory is a mock implementation of SignerFactory
type MockSignerFactory struct {
	mock.Mock
}

func (m *MockSignerFactory) NewSigner(ctx context.Context, params config.SignerParams) (config.Signer, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(config.Signer), args.Error(1)
}

// MockSigner is a mock implementation of Signer
type MockSigner struct {
	mock.Mock
}

func (m *MockSigner) Network() string {
	return m.Called().String(0)
}

func (m *MockSigner) Accounts() []common.Address {
	return m.Called().Get(0).([]common.Address)
}

func (m *MockSigner) Endpoint() string {
	return m.Called().String(0)
}

func (m *MockSigner) ChainID(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockSigner) Close() {
	m.Called()
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string)  {}
func (m *MockProgressSink) Error(message string) {}

// newRuntimeConfig resolves a config the way the CLI does, with factory
// standing in for the HD wallet
func newRuntimeConfig(t *testing.T, factory config.SignerFactory, env config.Environment) *config.RuntimeConfig {
	t.Helper()

	resolved, err := internalconfig.NewResolver(factory).Resolve(env, config.Invocation{})
	require.NoError(t, err)

	return &config.RuntimeConfig{
		ProjectRoot: "/project",
		DataDir:     "/project/.highwind",
		IntentMode:  config.IntentLegacy,
		Resolved:    resolved,
	}
}

func credentials() config.Environment {
	return config.Environment{
		config.EnvMnemonic:  "test test test test test test test test test test test junk",
		config.EnvInfuraKey: "abc123",
	}
}
