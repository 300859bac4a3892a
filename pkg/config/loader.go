package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/logging"
)

const (
	// ProjectConfigName is looked up in the directory of the opened path
	ProjectConfigName = ".ride.toml"
	envPrefix         = "RIDE_"
)

// LoadOptions selects the layers to load
type LoadOptions struct {
	// Root is the directory searched for a project config file
	Root string

	// File is an explicit config file; it must exist when set
	File string

	SkipUser bool
	SkipEnv  bool
}

// Load builds the configuration from defaults, user file, project file,
// explicit file and environment, in that order.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	if !opts.SkipUser {
		if err := loadIfExists(k, userConfigPath()); err != nil {
			return nil, err
		}
	}

	// 3. Project config
	if opts.Root != "" {
		if err := loadIfExists(k, filepath.Join(opts.Root, ProjectConfigName)); err != nil {
			return nil, err
		}
	}

	// 4. Explicit config
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "config file not found").
				WithDetail("path", opts.File)
		}
		if err := loadFile(k, opts.File); err != nil {
			return nil, err
		}
	}

	// 5. Env vars: RIDE_FILES_INIT_NAME -> files.init_name
	if !opts.SkipEnv {
		err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
			return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
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

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("defaultFormat", cfg.Formats.Default).
		Str("initName", cfg.Files.InitName).
		Bool("recursiveSuites", cfg.Keywords.RecursiveSuites).
		Msg("Configuration loaded")

	return &cfg, nil
}

func loadIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return loadFile(k, path)
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to load config file").
			WithDetail("path", path)
	}
	return nil
}

// userConfigPath respects XDG_CONFIG_HOME if set
func userConfigPath() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, logging.AppName, "config.toml")
	}
	return filepath.Join(xdg.ConfigHome, logging.AppName, "config.toml")
}
