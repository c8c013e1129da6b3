package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the root configuration structure.
type Config struct {
	Descriptor DescriptorConfig `json:"descriptor"`
	Filters    FilterConfig     `json:"filters"`
	Output     OutputConfig     `json:"output"`
}

// DescriptorConfig selects the build descriptor to mine and how to parse it.
type DescriptorConfig struct {
	Filename string `json:"filename"` // Default: "pom.xml"
	Parser   string `json:"parser"`   // "xml" or "regex"; default: "xml"
}

// FilterConfig holds descriptor path filtering options.
type FilterConfig struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// OutputConfig holds report output options.
type OutputConfig struct {
	Directory string `json:"directory"` // Default: "." (working directory)
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Descriptor: DescriptorConfig{
			Filename: "pom.xml",
			Parser:   "xml",
		},
		Filters: FilterConfig{
			Include: []string{},
			Exclude: []string{},
		},
		Output: OutputConfig{
			Directory: ".",
		},
	}
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{".depminer.json"}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, ".depminer.json"))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig saves configuration to a file.
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
