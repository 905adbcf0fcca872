package usecase

import (
	"context"

	"github.com/highwind-nft/highwind/internal/domain/config"
)

// LocalConfigStore persists the local config file
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, config *config.LocalConfig) error
	GetPath() string
}

// NetworkSelector lets the user pick a network profile
type NetworkSelector interface {
	SelectNetwork(ctx context.Context, profiles []*config.NetworkProfile, prompt string) (*config.NetworkProfile, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
