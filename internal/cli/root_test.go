package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	domain "github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMnemonic = "test test test test test test test test test test test junk"

// setupProject makes an empty project the working directory with a clean
// credential environment
func setupProject(t *testing.T, env map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "highwind.toml"), []byte("[compiler]\nversion = \"0.8.0\"\n"), 0644))
	t.Chdir(dir)

	for _, key := range []string{
		domain.EnvMnemonic,
		domain.EnvInfuraKey,
		domain.EnvContractsBuild,
		domain.EnvContractsDir,
		domain.EnvNpmConfigArgv,
		"HIGHWIND_NETWORK",
		"HIGHWIND_INTENT",
		"HIGHWIND_STRICT_EXIT",
		"HIGHWIND_JSON",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	return dir
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd(args)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "highwind version dev\n", stdout)
}

func TestMissingCredentialsHalt(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{
			name:     "legacy rinkeby exits zero",
			args:     []string{"networks", "--network", "rinkeby"},
			wantCode: 0,
		},
		{
			name:     "legacy live exits zero",
			args:     []string{"config", "export", "-n", "live"},
			wantCode: 0,
		},
		{
			name:     "strict exit",
			args:     []string{"networks", "--network", "rinkeby", "--strict-exit"},
			wantCode: 1,
		},
		{
			name:     "flag intent",
			args:     []string{"networks", "--intent", "flag", "--network", "matic"},
			wantCode: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupProject(t, map[string]string{domain.EnvMnemonic: testMnemonic})

			stdout, stderr, err := runCLI(t, tt.args...)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.wantCode, exitErr.Code)
			assert.ErrorIs(t, err, domain.ErrMissingCredentials)
			assert.Equal(t, "Please set a mnemonic and INFURA_KEY.\n", stderr)
			assert.Empty(t, stdout)
		})
	}
}

func TestStrictExitFromEnvironment(t *testing.T) {
	setupProject(t, map[string]string{"HIGHWIND_STRICT_EXIT": "true"})

	_, _, err := runCLI(t, "networks", "--network", "rinkeby")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}

func TestNoIntentResolvesWithoutCredentials(t *testing.T) {
	setupProject(t, map[string]string{domain.EnvContractsBuild: "./build/contracts"})

	stdout, _, err := runCLI(t, "config", "export")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, "./build/contracts", doc["contracts_build_directory"])

	networks := doc["networks"].(map[string]any)
	assert.Len(t, networks, 4)
	polygon := networks["polygon"].(map[string]any)
	assert.EqualValues(t, 137, polygon["network_id"])
	assert.EqualValues(t, 137, polygon["chainId"])
	assert.Equal(t, true, polygon["skipDryRun"])

	compilers := doc["compilers"].(map[string]any)
	assert.Equal(t, "0.8.0", compilers["solc"].(map[string]any)["version"])
}

func TestLiveExportNeverLeaksSecrets(t *testing.T) {
	setupProject(t, map[string]string{
		domain.EnvMnemonic:  testMnemonic,
		domain.EnvInfuraKey: "supersecretkey",
	})

	stdout, stderr, err := runCLI(t, "config", "export", "--network", "live", "--format", "yaml")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	assert.Contains(t, stdout, "https://mainnet.infura.io/v3/***")
	assert.Contains(t, stdout, "gasPrice: \"5000000000\"")
	assert.NotContains(t, stdout, "supersecretkey")
	assert.NotContains(t, stdout, "junk")
}

func TestSignerCmd(t *testing.T) {
	t.Run("derives accounts", func(t *testing.T) {
		setupProject(t, map[string]string{
			domain.EnvMnemonic:  testMnemonic,
			domain.EnvInfuraKey: "key",
		})

		stdout, _, err := runCLI(t, "signer", "matic", "--json", "--non-interactive")
		require.NoError(t, err)

		var out signerJSON
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		assert.Equal(t, "polygon", out.Network)
		assert.EqualValues(t, 137, out.ChainID)
		assert.Equal(t, "https://polygon-mainnet.infura.io/v3/***", out.Endpoint)
		require.Len(t, out.Accounts, 10)
		assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", out.Accounts[0])
		assert.Nil(t, out.RemoteChainID)
	})

	t.Run("missing credentials at build time", func(t *testing.T) {
		setupProject(t, nil)

		_, stderr, err := runCLI(t, "signer", "polygon", "--non-interactive")

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 0, exitErr.Code)
		assert.Equal(t, "Please set a mnemonic and INFURA_KEY.\n", stderr)
	})

	t.Run("unknown network suggests", func(t *testing.T) {
		setupProject(t, map[string]string{
			domain.EnvMnemonic:  testMnemonic,
			domain.EnvInfuraKey: "key",
		})

		_, _, err := runCLI(t, "signer", "polygn", "--non-interactive")
		assert.ErrorIs(t, err, domain.ErrUnknownNetwork)
		assert.ErrorContains(t, err, "polygon")
	})

	t.Run("failed check hides api key", func(t *testing.T) {
		dir := setupProject(t, map[string]string{
			domain.EnvMnemonic:  testMnemonic,
			domain.EnvInfuraKey: "supersecretkey",
		})
		require.NoError(t, os.WriteFile(filepath.Join(dir, "highwind.toml"),
			[]byte("[rpc_endpoints]\nethereum = \"http://127.0.0.1:1/v3\"\n"), 0644))

		stdout, stderr, err := runCLI(t, "signer", "ethereum", "--check", "--non-interactive")
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to get chain ID from http://127.0.0.1:1/v3/***")
		assert.NotContains(t, err.Error(), "supersecretkey")
		assert.NotContains(t, stdout, "supersecretkey")
		assert.NotContains(t, stderr, "supersecretkey")
	})

	t.Run("no network in non-interactive mode", func(t *testing.T) {
		setupProject(t, nil)

		_, _, err := runCLI(t, "signer", "--non-interactive")
		assert.ErrorContains(t, err, "no network specified")
	})
}

func TestConfigSetThenNetworks(t *testing.T) {
	dir := setupProject(t, nil)

	stdout, _, err := runCLI(t, "config", "set", "net", "matic")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Set network to: polygon")

	data, err := os.ReadFile(filepath.Join(dir, ".highwind", "config.local.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"network":"polygon","intent":"legacy"}`, string(data))

	stdout, _, err = runCLI(t, "networks", "--json")
	require.NoError(t, err)

	var rows []networkJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &rows))
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Equal(t, row.Name == "polygon", row.Selected, row.Name)
	}

	stdout, _, err = runCLI(t, "config", "remove", "network")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed network from config")
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	setupProject(t, nil)

	_, _, err := runCLI(t, "config", "set", "intent", "sometimes")
	assert.ErrorContains(t, err, "invalid intent mode")

	_, _, err = runCLI(t, "config", "set", "namespace", "prod")
	assert.ErrorContains(t, err, "unknown config key")
}
