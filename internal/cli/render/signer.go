package render

import (
	"fmt"
	"io"

	"github.com/highwind-nft/highwind/internal/usecase"
)

// SignerRenderer renders a built signer
type SignerRenderer struct {
	out io.Writer
}

// NewSignerRenderer creates a new signer renderer
func NewSignerRenderer(out io.Writer) *SignerRenderer {
	return &SignerRenderer{
		out: out,
	}
}

// RenderSigner renders the accounts and, when checked, the chain ID match
func (r *SignerRenderer) RenderSigner(result *usecase.SelectNetworkResult) error {
	profile := result.Profile

	fmt.Fprintf(r.out, "🔑 Signer for %s\n", labelStyle.Sprint(profile.Name))
	fmt.Fprintf(r.out, "Endpoint: %s\n", valueStyle.Sprint(result.Endpoint))
	fmt.Fprintln(r.out)

	t := newPlainTable(2)
	for i, account := range result.Accounts {
		t.AppendRow([]interface{}{fmt.Sprintf("#%d", i), addressStyle.Sprint(account.Hex())})
	}
	fmt.Fprintln(r.out, t.Render())

	if profile.ExplorerURL != "" && len(result.Accounts) > 0 {
		fmt.Fprintf(r.out, "\nExplorer: %s/address/%s\n", profile.ExplorerURL, result.Accounts[0].Hex())
	}
	if profile.IsTestnet() {
		fmt.Fprintf(r.out, "Faucet:   %s\n", profile.FaucetURL)
	}

	if !result.Checked {
		return nil
	}

	fmt.Fprintln(r.out)
	if result.ChainIDMatch {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Chain ID %d matches", result.RemoteChainID)))
	} else {
		fmt.Fprintln(r.out, FormatError(fmt.Sprintf("chain ID mismatch (node reports %d, expected %d)",
			result.RemoteChainID, profile.EffectiveChainID())))
	}

	return nil
}
