package cli

import (
	"encoding/json"
	"fmt"

	"github.com/highwind-nft/highwind/internal/cli/render"
	"github.com/highwind-nft/highwind/internal/usecase"
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration and manage local config",
		Long: `Show the resolved deploy configuration and manage the local config stored
in .highwind/config.local.json.

The local config holds the default network and the intent mode used to
decide whether credentials are required.

Available subcommands:
  config           Show current config
  config export    Print the deploy tool configuration document
  config set       Set a config value
  config remove    Remove a config value

When run without subcommands, displays the current config.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd)
		},
	}

	cmd.AddCommand(NewConfigExportCmd())
	cmd.AddCommand(NewConfigSetCmd())
	cmd.AddCommand(NewConfigRemoveCmd())

	return cmd
}

// NewConfigExportCmd creates the config export subcommand
func NewConfigExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the deploy tool configuration document",
		Long: `Print the resolved configuration in the shape the deploy tool reads:
contract paths, one entry per network, test runner options and compilers.

Provider URLs are redacted and the mnemonic is never printed.

Examples:
  highwind config export
  highwind config export --format yaml`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ExportConfig.Run(cmd.Context(), usecase.ExportConfigParams{
				Format: format,
			})
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(result.Data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format (json, yaml)")

	return cmd
}

// NewConfigSetCmd creates the config set subcommand
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a config value",
		Long: `Set a config value in .highwind/config.local.json.
Available keys: network (net), intent

Examples:
  highwind config set network polygon
  highwind config set intent flag`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.SetConfigParams{
				Key:   args[0],
				Value: args[1],
			}

			result, err := app.SetConfig.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout())
			return renderer.RenderSet(result)
		},
	}
}

// NewConfigRemoveCmd creates the config remove subcommand
func NewConfigRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <key>",
		Short: "Remove a config value",
		Long: `Remove a config value from .highwind/config.local.json.
Removing network makes it unspecified.
Removing intent reverts it to 'legacy'.

Examples:
  highwind config remove network
  highwind config remove intent`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.RemoveConfigParams{
				Key: args[0],
			}

			result, err := app.RemoveConfig.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout())
			return renderer.RenderRemove(result)
		},
	}
}

// showConfig displays the current configuration
func showConfig(cmd *cobra.Command) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.ShowConfig.Run(cmd.Context())
	if err != nil {
		return err
	}

	if app.Config.JSON {
		data, err := json.MarshalIndent(usecase.BuildExportDocument(result.Resolved), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	renderer := render.NewConfigRenderer(cmd.OutOrStdout())
	return renderer.RenderConfig(result)
}
