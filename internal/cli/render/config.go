package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/highwind-nft/highwind/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	resolved := result.Resolved

	fmt.Fprintln(r.out, "📋 Resolved config:")

	t := newPlainTable(2)
	t.AppendRow([]interface{}{labelStyle.Sprint("Contracts build"), orUnset(resolved.ContractsBuildDirectory)})
	t.AppendRow([]interface{}{labelStyle.Sprint("Contracts dir"), orUnset(resolved.ContractsDirectory)})
	t.AppendRow([]interface{}{labelStyle.Sprint("Compiler"), valueStyle.Sprint(formatCompiler(resolved.Compiler))})
	t.AppendRow([]interface{}{labelStyle.Sprint("Test"), orUnset(formatTestOptions(resolved.Test))})
	t.AppendRow([]interface{}{labelStyle.Sprint("Networks"), valueStyle.Sprint(strings.Join(resolved.NetworkNames(), ", "))})
	t.AppendRow([]interface{}{labelStyle.Sprint("Intent"), valueStyle.Sprint(title(string(result.IntentMode)))})
	t.AppendRow([]interface{}{labelStyle.Sprint("Network"), orUnset(result.Network)})
	fmt.Fprintln(r.out, t.Render())

	if result.ConfigSource != "" {
		fmt.Fprintf(r.out, "\n📦 Config source: %s\n", result.ConfigSource)
	}

	if !result.LocalExists {
		fmt.Fprintf(r.out, "📁 No local config file (%s)\n", getRelativePath(result.LocalPath))
		return nil
	}
	fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.LocalPath))

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Set %s to: %s", result.Key, result.Value)))
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyNetwork:
		fmt.Fprintln(r.out, FormatSuccess("Removed network from config"))
	case config.ConfigKeyIntent:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Reset intent to: %s", config.IntentLegacy)))
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

func formatCompiler(c config.CompilerSelection) string {
	name := c.Name
	if name == "" {
		name = "solc"
	}

	s := fmt.Sprintf("%s %s", name, c.Version)
	if c.Settings == nil {
		return s
	}

	if opt := c.Settings.Optimizer; opt != nil {
		if opt.Enabled {
			s += fmt.Sprintf(" [optimizer: %d runs]", opt.Runs)
		} else {
			s += " [optimizer: off]"
		}
	}
	if c.Settings.EVMVersion != "" {
		s += fmt.Sprintf(" [evm: %s]", c.Settings.EVMVersion)
	}
	return s
}

func formatTestOptions(o config.TestOptions) string {
	var parts []string
	if o.Timeout > 0 {
		parts = append(parts, fmt.Sprintf("timeout %s", o.Timeout))
	}
	if o.Reporter != "" {
		parts = append(parts, fmt.Sprintf("reporter %s", o.Reporter))
	}
	return strings.Join(parts, ", ")
}
