package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/highwind-nft/highwind/internal/cli/render"
	domain "github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/highwind-nft/highwind/internal/usecase"
	"github.com/spf13/cobra"
)

type signerJSON struct {
	Network       string   `json:"network"`
	Endpoint      string   `json:"endpoint"`
	Accounts      []string `json:"accounts"`
	ChainID       uint64   `json:"chainId"`
	RemoteChainID *uint64  `json:"remoteChainId,omitempty"`
	ChainIDMatch  *bool    `json:"chainIdMatch,omitempty"`
}

// NewSignerCmd creates the signer command
func NewSignerCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "signer [network]",
		Short: "Build the signer for a network and show its accounts",
		Long: `Build the HD wallet signer for a remote network from MNEMONIC and
INFURA_KEY and print the derived accounts.

The network is taken from the argument, then --network, then the local
config. Without any of them an interactive picker is shown.

With --check the node is asked for its chain ID, which is compared with
the profile.

Examples:
  highwind signer polygon
  highwind signer --network mumbai --check`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.SelectNetworkParams{Check: check}
			if len(args) > 0 {
				params.Name = args[0]
			}

			result, err := app.SelectNetwork.Run(cmd.Context(), params)
			if err != nil {
				var missing *domain.MissingCredentialsError
				if errors.As(err, &missing) {
					return haltMissingCredentials(cmd, app.Config.Debug, app.Config.StrictExit, missing)
				}
				return err
			}

			if app.Config.JSON {
				out := signerJSON{
					Network:  result.Profile.Name,
					Endpoint: result.Endpoint,
					ChainID:  result.Profile.EffectiveChainID(),
				}
				for _, account := range result.Accounts {
					out.Accounts = append(out.Accounts, account.Hex())
				}
				if result.Checked {
					out.RemoteChainID = &result.RemoteChainID
					out.ChainIDMatch = &result.ChainIDMatch
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			renderer := render.NewSignerRenderer(cmd.OutOrStdout())
			return renderer.RenderSigner(result)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Query the node's chain ID and compare it with the profile")

	return cmd
}
