package keyword

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// ChainConfig tunes which providers the fallback chain attempts. The attempt
// order is fixed by the chain itself; the file can only disable providers.
type ChainConfig struct {
	Providers []ProviderToggle `yaml:"providers"`
}

// ProviderToggle enables or disables a single named provider.
type ProviderToggle struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
}

// LoadChainConfig reads a chain config from a YAML file.
func LoadChainConfig(path string) (*ChainConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "keyword: read chain config %s", path)
	}

	// The YAML has a top-level "chain" key.
	var wrapper struct {
		Chain ChainConfig `yaml:"chain"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, eris.Wrap(err, "keyword: parse chain config")
	}

	return &wrapper.Chain, nil
}

// ProviderEnabled reports whether a provider should be attempted. Providers
// not mentioned in the file stay enabled.
func (c *ChainConfig) ProviderEnabled(name string) bool {
	if c == nil {
		return true
	}
	for _, p := range c.Providers {
		if p.Name == name {
			return p.Enabled
		}
	}
	return true
}
