package config

import (
	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Marshal renders cfg as "yaml" or "toml"
func Marshal(cfg *Config, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml", "":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to render yaml")
		}
		return out, nil
	case "toml":
		out, err := toml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to render toml")
		}
		return out, nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown format '%s': use yaml or toml", format)
}
