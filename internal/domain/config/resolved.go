package config

import (
	"sort"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// ResolvedConfig is the configuration handed to the deploy tool. It is
// built once per process by the resolver and only read afterwards.
type ResolvedConfig struct {
	// ContractsBuildDirectory and ContractsDirectory are the raw
	// environment values; "" when unset
	ContractsBuildDirectory string
	ContractsDirectory      string

	Networks map[string]*NetworkProfile
	Test     TestOptions
	Compiler CompilerSelection
}

// NetworkNames returns the profile names in sorted order
func (c *ResolvedConfig) NetworkNames() []string {
	names := lo.Keys(c.Networks)
	sort.Strings(names)
	return names
}

// Profiles returns the profiles sorted by name
func (c *ResolvedConfig) Profiles() []*NetworkProfile {
	return lo.Map(c.NetworkNames(), func(name string, _ int) *NetworkProfile {
		return c.Networks[name]
	})
}

// Network looks up a profile by name or alias
func (c *ResolvedConfig) Network(name string) (*NetworkProfile, error) {
	if profile, ok := c.Networks[CanonicalNetworkName(name)]; ok {
		return profile, nil
	}

	candidates := append(c.NetworkNames(), lo.Keys(NetworkAliases)...)
	matches := fuzzy.Find(name, candidates)
	suggestions := lo.Uniq(lo.Map(matches, func(m fuzzy.Match, _ int) string {
		return CanonicalNetworkName(m.Str)
	}))

	return nil, &UnknownNetworkError{Name: name, Suggestions: suggestions}
}
