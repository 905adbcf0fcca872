package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/highwind-nft/highwind/internal/usecase"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectNetwork selects a network profile from a list
func (s *SelectorAdapter) SelectNetwork(ctx context.Context, profiles []*config.NetworkProfile, prompt string) (*config.NetworkProfile, error) {
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("no networks provided for selection")
	}

	if len(profiles) == 1 {
		return profiles[0], nil
	}

	options := formatNetworkOptions(profiles)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(searchKeys(profiles)),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return profiles[index], nil
}

// formatNetworkOptions renders "name (chain 137, MATIC) [testnet]"
func formatNetworkOptions(profiles []*config.NetworkProfile) []string {
	options := make([]string, len(profiles))
	for i, profile := range profiles {
		name := color.New(color.FgWhite, color.Bold).Sprint(profile.Name)
		detail := color.New(color.FgBlue).Sprintf("chain %d", profile.EffectiveChainID())
		if profile.NativeToken != "" {
			detail += color.New(color.FgBlue).Sprintf(", %s", profile.NativeToken)
		}

		if profile.IsTestnet() {
			options[i] = fmt.Sprintf("%s (%s) %s", name, detail, color.New(color.FgYellow).Sprint("[testnet]"))
		} else {
			options[i] = fmt.Sprintf("%s (%s)", name, detail)
		}
	}
	return options
}

// searchKeys are the uncolored strings matched against the search input
func searchKeys(profiles []*config.NetworkProfile) []string {
	keys := make([]string, len(profiles))
	for i, profile := range profiles {
		keys[i] = fmt.Sprintf("%s %d %s", profile.Name, profile.EffectiveChainID(), profile.NativeToken)
	}
	return keys
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

var _ usecase.NetworkSelector = (*SelectorAdapter)(nil)
