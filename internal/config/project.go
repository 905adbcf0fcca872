package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/highwind-nft/highwind/internal/domain/config"
)

// ProjectFileName is the optional per-project settings file
const ProjectFileName = "highwind.toml"

// ProjectFile represents highwind.toml
type ProjectFile struct {
	Compiler  *config.CompilerSelection `toml:"compiler"`
	Test      *TestSection              `toml:"test"`
	Endpoints map[string]string         `toml:"rpc_endpoints"`
}

// TestSection represents the [test] table
type TestSection struct {
	Timeout  string `toml:"timeout"`
	Reporter string `toml:"reporter"`
}

// LoadProjectFile reads highwind.toml from projectRoot. A missing file is
// not an error; it returns nil.
func LoadProjectFile(projectRoot string) (*ProjectFile, error) {
	path := filepath.Join(projectRoot, ProjectFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var pf ProjectFile
	md, err := toml.DecodeFile(path, &pf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown keys in %s: %v", ProjectFileName, undecoded)
	}

	return &pf, nil
}

// ResolverOptions converts the file into resolver overrides
func (pf *ProjectFile) ResolverOptions() ([]ResolverOption, error) {
	if pf == nil {
		return nil, nil
	}

	var opts []ResolverOption
	if pf.Compiler != nil {
		compiler := *pf.Compiler
		if compiler.Name == "" {
			compiler.Name = "solc"
		}
		if compiler.Version == "" {
			compiler.Version = DefaultSolcVersion
		}
		opts = append(opts, WithCompiler(compiler))
	}

	if pf.Test != nil {
		test := config.TestOptions{Reporter: pf.Test.Reporter}
		if pf.Test.Timeout != "" {
			timeout, err := time.ParseDuration(pf.Test.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid test timeout %q: %w", pf.Test.Timeout, err)
			}
			test.Timeout = timeout
		}
		opts = append(opts, WithTestOptions(test))
	}

	if len(pf.Endpoints) > 0 {
		remote := RemoteSignerNetworks()
		for name, endpoint := range pf.Endpoints {
			if !remote[name] {
				return nil, fmt.Errorf("rpc_endpoints: %s is not a remote network", name)
			}
			if endpoint == "" {
				return nil, fmt.Errorf("rpc_endpoints: empty endpoint for %s", name)
			}
		}
		opts = append(opts, WithEndpoints(pf.Endpoints))
	}

	return opts, nil
}

// FindProjectRoot walks up from the current directory looking for
// highwind.toml. Without one the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}
