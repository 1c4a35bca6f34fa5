package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/linkrouter/pkg/errors"
	"github.com/arthur-debert/linkrouter/pkg/logging"
	"github.com/arthur-debert/linkrouter/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override settings
const EnvPrefix = "LINKROUTER_"

// LoadOptions controls where settings come from
type LoadOptions struct {
	// ConfigDir holds config.toml or config.yaml; empty skips the file layer
	ConfigDir string

	// Overrides are applied last, keyed like the settings file. The CLI
	// passes only flags the user actually set.
	Overrides map[string]interface{}
}

// settingsParsers are tried in order; the first file that exists is loaded
var settingsParsers = []struct {
	ext    string
	parser koanf.Parser
}{
	{".toml", toml.Parser()},
	{".yaml", yaml.Parser()},
	{".yml", yaml.Parser()},
}

// Load resolves the configuration layers into a Config
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Settings file
	source := ""
	if opts.ConfigDir != "" {
		for _, sp := range settingsParsers {
			path := filepath.Join(opts.ConfigDir, paths.ConfigFileName+sp.ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			if err := k.Load(file.Provider(path), sp.parser); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load settings from %s", path).
					WithDetail(errors.DetailSource, path)
			}
			source = path
			break
		}
	}

	// 3. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration").
			WithDetail(errors.DetailSource, source)
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", source).
		Str("defaultCommand", cfg.DefaultCommand).
		Dur("remoteTimeout", cfg.RemoteTimeout).
		Strs("rulesGlob", cfg.RulesGlob).
		Msg("Configuration loaded")
	return &cfg, nil
}
