package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/lollywiz/pkg/errors"
	"github.com/arthur-debert/lollywiz/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks the environment variables that override configuration
const EnvPrefix = "LOLLYWIZ_"

// Options selects the sources Load reads
type Options struct {
	// ConfigFile replaces the user config path. Unlike the default path it
	// must exist.
	ConfigFile string
	// AnswersFile is a .toml, .yaml or .yml file layered over the config
	AnswersFile string
	// Overrides are flag values keyed by dotted path, e.g. "library.dir"
	Overrides map[string]interface{}
}

// Load builds the effective configuration
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path := opts.ConfigFile
	required := path != ""
	if path == "" {
		path = UserConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if required {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path)
	}

	// 3. Answers file
	if opts.AnswersFile != "" {
		parser, err := parserFor(opts.AnswersFile)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(opts.AnswersFile), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load answers from %s", opts.AnswersFile)
		}
		logger.Debug().Str("path", opts.AnswersFile).Msg("Loaded answers file")
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flag overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// envKey maps LOLLYWIZ_SECTION_SOME_KEY to section.some_key: the first
// underscore separates the section, the others belong to the key
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if section, rest, ok := strings.Cut(key, "_"); ok && isSection(section) {
		return section + "." + rest
	}
	return key
}

func isSection(name string) bool {
	switch name {
	case "log", "library", "instantiate", "replacements":
		return true
	}
	return false
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	}
	return nil, errors.Newf(errors.ErrConfigLoad, "answers file %s must be .toml, .yaml or .yml", path)
}
