package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gnolang/proplogic/internal/formula"
	tt "github.com/gnolang/proplogic/internal/types"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the configuration file looked up when none is given.
const DefaultConfigPath = ".proplogic.yaml"

// Config represents the overall configuration.
type Config struct {
	Name         string                   `yaml:"name"`
	Extensions   []string                 `yaml:"extensions"`
	MaxVariables int                      `yaml:"max_variables"`
	IgnorePaths  []string                 `yaml:"ignore_paths,omitempty"`
	Rules        map[string]tt.ConfigRule `yaml:"rules"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	rules := make(map[string]tt.ConfigRule)
	for _, name := range formula.Rules() {
		rules[name] = tt.ConfigRule{Severity: tt.SeverityError}
	}
	return Config{
		Name:         "proplogic",
		Extensions:   []string{".prop", ".pl"},
		MaxVariables: formula.DefaultMaxVariables,
		Rules:        rules,
	}
}

// LoadConfig reads the configuration file at configurationPath. An empty path
// means DefaultConfigPath, which may be absent; an explicit path must exist.
// Fields missing from the file keep their default value.
func LoadConfig(configurationPath string) (Config, error) {
	config := DefaultConfig()

	explicit := configurationPath != ""
	if !explicit {
		configurationPath = DefaultConfigPath
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing %s: %w", configurationPath, err)
	}

	if len(config.Extensions) == 0 {
		config.Extensions = DefaultConfig().Extensions
	}
	if config.MaxVariables <= 0 {
		config.MaxVariables = formula.DefaultMaxVariables
	}
	return config, nil
}

// WriteConfig stores config as YAML at configurationPath.
func WriteConfig(configurationPath string, config Config) error {
	if configurationPath == "" {
		configurationPath = DefaultConfigPath
	}

	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
