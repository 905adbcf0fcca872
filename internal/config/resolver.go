package config

import (
	"log/slog"

	"github.com/highwind-nft/highwind/internal/domain/config"
)

// Resolver turns an environment and an invocation into a ResolvedConfig.
// It reads nothing from the process; everything is passed in.
type Resolver struct {
	factory   config.SignerFactory
	intent    IntentPredicate
	compiler  config.CompilerSelection
	test      config.TestOptions
	endpoints map[string]string
	log       *slog.Logger
}

// ResolverOption configures a Resolver
type ResolverOption func(*Resolver)

// WithIntent replaces the legacy intent heuristic
func WithIntent(intent IntentPredicate) ResolverOption {
	return func(r *Resolver) {
		r.intent = intent
	}
}

// WithCompiler overrides the default compiler selection
func WithCompiler(compiler config.CompilerSelection) ResolverOption {
	return func(r *Resolver) {
		r.compiler = compiler
	}
}

// WithTestOptions sets the test runner options
func WithTestOptions(test config.TestOptions) ResolverOption {
	return func(r *Resolver) {
		r.test = test
	}
}

// WithEndpoints replaces the node URL prefix of the named networks. The API
// key is still appended as the last path segment.
func WithEndpoints(endpoints map[string]string) ResolverOption {
	return func(r *Resolver) {
		r.endpoints = endpoints
	}
}

// WithLogger sets the logger used for debug output
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.log = log
	}
}

// NewResolver creates a resolver whose deferred signers use factory
func NewResolver(factory config.SignerFactory, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		factory:  factory,
		intent:   LegacyIntent(),
		compiler: DefaultCompiler(),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve builds the configuration. When the invocation targets a remote
// network and either secret is absent it returns a
// *config.MissingCredentialsError and builds nothing.
func (r *Resolver) Resolve(env config.Environment, inv config.Invocation) (*config.ResolvedConfig, error) {
	secrets := config.SecretsFromEnvironment(env)
	needsRemoteSigner := r.intent.NeedsRemoteSigner(inv)

	r.log.Debug("resolving configuration",
		"needs_remote_signer", needsRemoteSigner,
		"mnemonic", secrets.Mnemonic,
		"api_key", secrets.APIKey,
	)

	if !secrets.Complete() && needsRemoteSigner {
		return nil, &config.MissingCredentialsError{Missing: secrets.Missing()}
	}

	cfg := &config.ResolvedConfig{
		ContractsBuildDirectory: env.Get(config.EnvContractsBuild),
		ContractsDirectory:      env.Get(config.EnvContractsDir),
		Networks:                make(map[string]*config.NetworkProfile, len(networkCatalog)),
		Test:                    r.test,
		Compiler:                r.compiler,
	}

	for _, def := range networkCatalog {
		cfg.Networks[def.name] = def.profile(r.factory, secrets, r.endpoints[def.name])
	}

	r.log.Debug("configuration resolved",
		"networks", len(cfg.Networks),
		"compiler", cfg.Compiler.Version,
	)

	return cfg, nil
}
