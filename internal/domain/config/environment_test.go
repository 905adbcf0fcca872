package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEnviron(t *testing.T) {
	env := ParseEnviron([]string{
		"MNEMONIC=a b c",
		"INFURA_KEY=",
		"URL=https://x?a=b",
		"=ignored",
		"NOEQUALS",
	})

	assert.Equal(t, Environment{
		"MNEMONIC":   "a b c",
		"INFURA_KEY": "",
		"URL":        "https://x?a=b",
	}, env)

	v, ok := env.Lookup("INFURA_KEY")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestEnvironmentMerge(t *testing.T) {
	base := Environment{"A": "1", "B": "2"}
	merged := base.Merge(Environment{"B": "3", "C": "4"})

	assert.Equal(t, Environment{"A": "1", "B": "3", "C": "4"}, merged)
	assert.Equal(t, "2", base.Get("B"), "merge must not mutate the receiver")
}

func TestInvocation(t *testing.T) {
	tests := []struct {
		name string
		env  Environment
		args []string
		want string
	}{
		{
			name: "npm argv wins",
			env:  Environment{EnvNpmConfigArgv: `{"remain":[],"original":["run","deploy:rinkeby"]}`},
			args: []string{"migrate"},
			want: `{"remain":[],"original":["run","deploy:rinkeby"]}`,
		},
		{
			name: "falls back to args",
			env:  Environment{},
			args: []string{"migrate", "--network", "live"},
			want: "migrate --network live",
		},
		{
			name: "nothing",
			env:  Environment{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewInvocation(tt.env, tt.args).Serialized())
		})
	}
}

func TestIntentModeValid(t *testing.T) {
	assert.True(t, IntentLegacy.Valid())
	assert.True(t, IntentFlag.Valid())
	assert.True(t, IntentAuto.Valid())
	assert.False(t, IntentMode("").Valid())
	assert.False(t, IntentMode("LEGACY").Valid())
}

func TestLocalConfigKeys(t *testing.T) {
	assert.True(t, IsValidConfigKey("network"))
	assert.True(t, IsValidConfigKey("net"))
	assert.True(t, IsValidConfigKey("intent"))
	assert.False(t, IsValidConfigKey("namespace"))
	assert.Equal(t, ConfigKeyNetwork, NormalizeConfigKey("net"))
}
