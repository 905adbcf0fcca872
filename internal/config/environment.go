package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/highwind-nft/highwind/internal/domain/config"
	"github.com/joho/godotenv"
)

// envFiles are read in order; later files override earlier ones
var envFiles = []string{".env", ".env.local"}

// LoadEnvironment layers the project's .env files under process. Values in
// process always win, so an exported variable overrides a .env entry.
// The process environment itself is not modified.
func LoadEnvironment(projectRoot string, process config.Environment) (config.Environment, error) {
	env := config.Environment{}

	for _, name := range envFiles {
		path := filepath.Join(projectRoot, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", name, err)
		}
		env = env.Merge(values)
	}

	return env.Merge(process), nil
}

// ProcessEnvironment snapshots the current process environment
func ProcessEnvironment() config.Environment {
	return config.ParseEnviron(os.Environ())
}
