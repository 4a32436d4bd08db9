package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config supplies defaults for gen flags from a YAML file. Flags given
// explicitly on the command line win over config values.
type Config struct {
	Size          int    `yaml:"size"`
	Number        int    `yaml:"number"`
	BlankFraction string `yaml:"blank"`
	Symmetric     *bool  `yaml:"symmetric"`
	Seed          int64  `yaml:"seed"`
	Output        string `yaml:"output"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &c, nil
}
