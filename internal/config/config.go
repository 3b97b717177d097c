package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when no config file exists at the searched locations.
var ErrNotFound = errors.New("no config file")

// LocalNames lists the repo-local config file names in search order.
var LocalNames = []string{".a11yscan.yml", ".a11yscan.yaml", ".a11yscan.toml", "a11yscan.yml", "a11yscan.yaml", "a11yscan.toml"}

// FileConfig is the on-disk configuration shape for a11yscan.
type FileConfig struct {
	Format      *string `yaml:"format,omitempty" toml:"format,omitempty"`
	FailOn      *string `yaml:"fail_on,omitempty" toml:"fail_on,omitempty"`
	NoColor     *bool   `yaml:"no_color,omitempty" toml:"no_color,omitempty"`
	Catalog     *string `yaml:"catalog,omitempty" toml:"catalog,omitempty"`
	Threads     *int    `yaml:"threads,omitempty" toml:"threads,omitempty"`
	Rules       *string `yaml:"rules,omitempty" toml:"rules,omitempty"`
	SkipRules   *string `yaml:"skip_rules,omitempty" toml:"skip_rules,omitempty"`
	MinSeverity *string `yaml:"min_severity,omitempty" toml:"min_severity,omitempty"`
	Baseline    *string `yaml:"baseline,omitempty" toml:"baseline,omitempty"`
	IgnoreFile  *string `yaml:"ignore_file,omitempty" toml:"ignore_file,omitempty"`
}

// LoadFile reads a config file, choosing TOML for a .toml extension and YAML
// otherwise.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(b), &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
func LoadLocal(root string) (FileConfig, error) {
	for _, name := range LocalNames {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, fmt.Errorf("local: %w", ErrNotFound)
}

// GlobalPath returns $XDG_CONFIG_HOME/a11yscan/config.yml, falling back to
// ~/.config. It returns "" when neither directory is known.
func GlobalPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, "a11yscan", "config.yml")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	p := GlobalPath()
	if p == "" {
		return FileConfig{}, errors.New("no config dir")
	}
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return FileConfig{}, fmt.Errorf("global: %w", ErrNotFound)
}

// Default is the configuration written by `config init`.
func Default() FileConfig {
	format, failOn, sev := "table", "warning", "info"
	threads := 4
	ignore := ".a11yignore"
	return FileConfig{
		Format:      &format,
		FailOn:      &failOn,
		Threads:     &threads,
		MinSeverity: &sev,
		IgnoreFile:  &ignore,
	}
}

// Encode renders cfg as YAML, or TOML when asTOML is set.
func Encode(cfg FileConfig, asTOML bool) ([]byte, error) {
	if asTOML {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return yaml.Marshal(cfg)
}
