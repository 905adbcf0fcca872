package render

import (
	"fmt"
	"io"

	"github.com/highwind-nft/highwind/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{
		out: out,
	}
}

// RenderNetworksList renders one row per network profile
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newPlainTable(5)
	for _, network := range result.Networks {
		profile := network.Profile

		marker := "  "
		name := profile.Name
		if network.Selected {
			marker = selectedStyle.Sprint("▸ ")
			name = selectedStyle.Sprint(name)
		}

		kind := ""
		if profile.IsTestnet() {
			kind = testnetStyle.Sprint("testnet")
		}

		t.AppendRow([]interface{}{
			marker + name,
			fmt.Sprintf("Chain ID: %d", profile.EffectiveChainID()),
			profile.NativeToken,
			kind,
			orUnset(network.Endpoint),
		})
	}
	fmt.Fprintln(r.out, t.Render())

	return nil
}
