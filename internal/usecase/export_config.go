package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/highwind-nft/highwind/internal/domain/config"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	ExportFormatJSON = "json"
	ExportFormatYAML = "yaml"
)

// ExportConfigParams contains parameters for exporting configuration
type ExportConfigParams struct {
	Format string
}

// ExportConfigResult contains the encoded document
type ExportConfigResult struct {
	Format   string
	Document *ExportDocument
	Data     []byte
}

// ExportDocument is the deploy-tool shaped view of a ResolvedConfig. It
// never carries secrets; provider URLs are redacted.
type ExportDocument struct {
	ContractsBuildDirectory string                              `json:"contracts_build_directory,omitempty" yaml:"contracts_build_directory,omitempty"`
	ContractsDirectory      string                              `json:"contracts_directory,omitempty" yaml:"contracts_directory,omitempty"`
	Networks                map[string]ExportNetwork            `json:"networks" yaml:"networks"`
	Mocha                   ExportMocha                         `json:"mocha" yaml:"mocha"`
	Compilers               map[string]config.CompilerSelection `json:"compilers" yaml:"compilers"`
}

// ExportNetwork is one entry of the networks map
type ExportNetwork struct {
	NetworkID     uint64          `json:"network_id" yaml:"network_id"`
	ChainID       uint64          `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	Confirmations int             `json:"confirmations,omitempty" yaml:"confirmations,omitempty"`
	TimeoutBlocks int             `json:"timeoutBlocks,omitempty" yaml:"timeoutBlocks,omitempty"`
	SkipDryRun    bool            `json:"skipDryRun" yaml:"skipDryRun"`
	Gas           uint64          `json:"gas,omitempty" yaml:"gas,omitempty"`
	GasPrice      string          `json:"gasPrice,omitempty" yaml:"gasPrice,omitempty"`
	Provider      *ExportProvider `json:"provider,omitempty" yaml:"provider,omitempty"`
}

// ExportProvider describes the deferred signer without building it
type ExportProvider struct {
	URL          string `json:"url" yaml:"url"`
	AddressIndex int    `json:"addressIndex" yaml:"addressIndex"`
	NumAddresses int    `json:"numAddresses" yaml:"numAddresses"`
}

// ExportMocha holds test runner options
type ExportMocha struct {
	TimeoutMs int64  `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Reporter  string `json:"reporter,omitempty" yaml:"reporter,omitempty"`
}

// ExportConfig is a use case for exporting the resolved configuration
type ExportConfig struct {
	config *config.RuntimeConfig
}

// NewExportConfig creates a new ExportConfig use case
func NewExportConfig(cfg *config.RuntimeConfig) *ExportConfig {
	return &ExportConfig{
		config: cfg,
	}
}

// Run executes the export config use case
func (uc *ExportConfig) Run(ctx context.Context, params ExportConfigParams) (*ExportConfigResult, error) {
	format := strings.ToLower(params.Format)
	if format == "" {
		format = ExportFormatJSON
	}

	doc := BuildExportDocument(uc.config.Resolved)

	var (
		data []byte
		err  error
	)
	switch format {
	case ExportFormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case ExportFormatYAML, "yml":
		format = ExportFormatYAML
		data, err = yaml.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported export format '%s' (expected json or yaml)", params.Format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return &ExportConfigResult{
		Format:   format,
		Document: doc,
		Data:     data,
	}, nil
}

// BuildExportDocument converts cfg into its exported form
func BuildExportDocument(cfg *config.ResolvedConfig) *ExportDocument {
	doc := &ExportDocument{
		ContractsBuildDirectory: cfg.ContractsBuildDirectory,
		ContractsDirectory:      cfg.ContractsDirectory,
		Networks:                make(map[string]ExportNetwork, len(cfg.Networks)),
		Mocha: ExportMocha{
			TimeoutMs: cfg.Test.Timeout.Milliseconds(),
			Reporter:  cfg.Test.Reporter,
		},
		Compilers: map[string]config.CompilerSelection{},
	}

	compilerName := cfg.Compiler.Name
	if compilerName == "" {
		compilerName = "solc"
	}
	doc.Compilers[compilerName] = cfg.Compiler

	for name, profile := range cfg.Networks {
		network := ExportNetwork{
			NetworkID:     profile.NetworkID,
			ChainID:       profile.ChainID,
			Confirmations: profile.Confirmations,
			TimeoutBlocks: profile.TimeoutBlocks,
			SkipDryRun:    profile.SkipDryRun,
		}
		if profile.Gas != nil {
			network.Gas = profile.Gas.Limit
			if profile.Gas.Price != nil {
				network.GasPrice = profile.Gas.Price.String()
			}
		}
		if profile.RequiresSigner() {
			params := profile.Signer.Params()
			network.Provider = &ExportProvider{
				URL:          params.RedactedURL(),
				AddressIndex: params.AddressIndex,
				NumAddresses: params.NumAddresses,
			}
		}
		doc.Networks[name] = network
	}

	return doc
}
