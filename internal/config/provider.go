package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/wire"
	"github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DataDirName is the per-project directory for local state
const DataDirName = ".highwind"

// ConfigSet provides the runtime configuration
var ConfigSet = wire.NewSet(
	Provider,
)

// Provider creates RuntimeConfig for Wire dependency injection. It runs the
// resolver, so a *config.MissingCredentialsError from here means the
// invocation must halt.
func Provider(
	v *viper.Viper,
	env config.Environment,
	inv config.Invocation,
	factory config.SignerFactory,
	log *slog.Logger,
) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	mode, err := ParseIntentMode(v.GetString("intent"))
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, DataDirName),
		Network:        v.GetString("network"),
		IntentMode:     mode,
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		StrictExit:     v.GetBool("strict_exit"),
	}

	projectFile, err := LoadProjectFile(projectRoot)
	if err != nil {
		return nil, err
	}
	if projectFile != nil {
		cfg.ConfigSource = ProjectFileName
	}

	opts, err := projectFile.ResolverOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ProjectFileName, err)
	}
	opts = append(opts, WithIntent(IntentForMode(mode)), WithLogger(log))

	resolved, err := NewResolver(factory, opts...).Resolve(env, inv)
	if err != nil {
		return nil, err
	}
	cfg.Resolved = resolved

	log.Debug("runtime config ready",
		"project_root", cfg.ProjectRoot,
		"network", cfg.Network,
		"intent", cfg.IntentMode,
		"source", cfg.ConfigSource,
	)

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Local config written by `highwind config set`
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, DataDirName))

	v.SetEnvPrefix("HIGHWIND")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("intent", string(config.IntentLegacy))
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("strict_exit", false)
	v.SetDefault("project_root", projectRoot)

	// Missing file is fine
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			// Unchanged flags must not shadow env or file values
			if !f.Changed {
				return
			}
			v.Set(strings.ReplaceAll(f.Name, "-", "_"), f.Value.String())
		})
	}

	return v
}
