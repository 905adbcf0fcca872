package cli

import (
	"encoding/json"
	"fmt"

	"github.com/highwind-nft/highwind/internal/cli/render"
	"github.com/highwind-nft/highwind/internal/usecase"
	"github.com/spf13/cobra"
)

type networkJSON struct {
	Name          string `json:"name"`
	NetworkID     uint64 `json:"networkId"`
	ChainID       uint64 `json:"chainId"`
	Confirmations int    `json:"confirmations"`
	SkipDryRun    bool   `json:"skipDryRun"`
	Endpoint      string `json:"endpoint,omitempty"`
	Explorer      string `json:"explorer,omitempty"`
	Faucet        string `json:"faucet,omitempty"`
	NativeToken   string `json:"nativeToken,omitempty"`
	Selected      bool   `json:"selected"`
}

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List network profiles",
		Long: `List the network profiles the deploy tool can target.

Endpoints are shown with the API key redacted. No connection is made and
no signer is built.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{
				Remote: remote,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				out := make([]networkJSON, 0, len(result.Networks))
				for _, n := range result.Networks {
					out = append(out, networkJSON{
						Name:          n.Profile.Name,
						NetworkID:     n.Profile.NetworkID,
						ChainID:       n.Profile.EffectiveChainID(),
						Confirmations: n.Profile.Confirmations,
						SkipDryRun:    n.Profile.SkipDryRun,
						Endpoint:      n.Endpoint,
						Explorer:      n.Profile.ExplorerURL,
						Faucet:        n.Profile.FaucetURL,
						NativeToken:   n.Profile.NativeToken,
						Selected:      n.Selected,
					})
				}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout())
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Only list networks that need a signer")

	return cmd
}
