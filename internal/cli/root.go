package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/highwind-nft/highwind/internal/adapters/progress"
	"github.com/highwind-nft/highwind/internal/app"
	"github.com/highwind-nft/highwind/internal/config"
	domain "github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(os.Args[1:])
}

// newRootCmd builds the command tree. argv is the raw argument list the
// intent predicates inspect; it is usually os.Args[1:].
func newRootCmd(argv []string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "highwind",
		Short: "Network and signer configuration for the Highwind NFT contracts",
		Long: `highwind resolves the deploy configuration for the Highwind NFT contracts:
build paths, compiler selection and one profile per remote network
(rinkeby, mumbai, polygon, ethereum) with a lazily built HD wallet signer.

Targeting a remote network requires MNEMONIC and INFURA_KEY, read from the
environment or from .env / .env.local in the project root.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			env, err := config.LoadEnvironment(projectRoot, config.ProcessEnvironment())
			if err != nil {
				return err
			}
			inv := domain.NewInvocation(env, argv)

			sink := progress.ForConfig(v.GetBool("non_interactive"), v.GetBool("json"))

			appInstance, err := app.InitApp(v, env, inv, sink)
			if err != nil {
				var missing *domain.MissingCredentialsError
				if errors.As(err, &missing) {
					return haltMissingCredentials(cmd, v.GetBool("debug"), v.GetBool("strict_exit"), missing)
				}
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (rinkeby, mumbai, polygon, ethereum)")
	rootCmd.PersistentFlags().String("intent", "", "How remote-network intent is detected (legacy, flag, auto)")
	rootCmd.PersistentFlags().Bool("strict-exit", false, "Exit with status 1 when credentials are missing")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	signerCmd := NewSignerCmd()
	signerCmd.GroupID = "main"
	rootCmd.AddCommand(signerCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "main"
	rootCmd.AddCommand(networksCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// haltMissingCredentials prints the credentials diagnostic and stops the
// command. The exit status is 0 unless strict exit is enabled.
func haltMissingCredentials(cmd *cobra.Command, debug, strict bool, err *domain.MissingCredentialsError) error {
	msg := err.Error()
	if debug {
		msg = err.Detail()
	}
	fmt.Fprintln(cmd.ErrOrStderr(), msg)

	code := 0
	if strict {
		code = 1
	}
	return &ExitError{Code: code, Err: err}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
