// Package rnconfig loads the two optional configuration files under a
// working copy's state directory: config.toml (defaults for plan/apply
// flags) and acronyms.yaml (acronym-set overrides).
package rnconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/renamify-go/renamify/pkg/acronym"
)

// Config is the parsed form of .renamify/config.toml (spec.md §6).
type Config struct {
	PreviewFormat     string   `toml:"preview_format"`
	RenameFiles       bool     `toml:"rename_files"`
	RenameDirs        bool     `toml:"rename_dirs"`
	UnrestrictedLevel int      `toml:"unrestricted_level"`
	UseColor          bool     `toml:"use_color"`
	Atomic            []string `toml:"atomic"`
}

// FileName is config.toml's basename inside the state directory.
const FileName = "config.toml"

// Path returns config.toml's path inside stateDir.
func Path(stateDir string) string {
	return filepath.Join(stateDir, FileName)
}

// DefaultConfig returns the documented defaults, matching the schema in
// spec.md §6.
func DefaultConfig() *Config {
	return &Config{
		PreviewFormat:     "table",
		RenameFiles:       true,
		RenameDirs:        true,
		UnrestrictedLevel: 0,
		UseColor:          true,
	}
}

// Load reads and parses config.toml from stateDir. A missing file
// returns DefaultConfig with no error, matching the teacher's
// LoadConfig/DefaultConfig split for .shipsafe.yml.
func Load(stateDir string) (*Config, error) {
	path := Path(stateDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("rnconfig: reading %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, fmt.Errorf("rnconfig: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// AcronymOverrides is the parsed form of .renamify/acronyms.yaml.
type AcronymOverrides struct {
	Add     []string `yaml:"add"`
	Remove  []string `yaml:"remove"`
	Replace []string `yaml:"replace"`
}

// AcronymsFileName is acronyms.yaml's basename inside the state
// directory.
const AcronymsFileName = "acronyms.yaml"

// AcronymsPath returns acronyms.yaml's path inside stateDir.
func AcronymsPath(stateDir string) string {
	return filepath.Join(stateDir, AcronymsFileName)
}

// LoadAcronyms builds the effective acronym set for stateDir: the
// built-in defaults, with acronyms.yaml's directives applied in this
// order: replace, then add, then remove. A missing file yields the plain
// defaults.
func LoadAcronyms(stateDir string) (*acronym.Set, error) {
	overrides, err := loadAcronymOverrides(stateDir)
	if err != nil {
		return nil, err
	}

	set := acronym.Default()
	if len(overrides.Replace) > 0 {
		set.Replace(overrides.Replace)
	}
	for _, a := range overrides.Add {
		set.Add(a)
	}
	for _, a := range overrides.Remove {
		set.Remove(a)
	}
	return set, nil
}

func loadAcronymOverrides(stateDir string) (*AcronymOverrides, error) {
	path := AcronymsPath(stateDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AcronymOverrides{}, nil
		}
		return nil, fmt.Errorf("rnconfig: reading %s: %w", path, err)
	}
	var overrides AcronymOverrides
	if err := unmarshalYAML(data, &overrides); err != nil {
		return nil, fmt.Errorf("rnconfig: parsing %s: %w", path, err)
	}
	return &overrides, nil
}
