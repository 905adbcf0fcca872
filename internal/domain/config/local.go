package config

// LocalConfig represents the local highwind configuration
type LocalConfig struct {
	Network string     `json:"network,omitempty"`
	Intent  IntentMode `json:"intent,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyNetwork ConfigKey = "network"
	ConfigKeyIntent  ConfigKey = "intent"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{
		Network: "",
		Intent:  IntentLegacy,
	}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyNetwork,
		ConfigKeyIntent,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key || (key == "net" && validKey == ConfigKeyNetwork) {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key (e.g., "net" -> "network")
func NormalizeConfigKey(key string) ConfigKey {
	if key == "net" {
		return ConfigKeyNetwork
	}
	return ConfigKey(key)
}
