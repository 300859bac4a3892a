package config

import (
	"github.com/snifferhu/RIDE/pkg/errors"
	"github.com/snifferhu/RIDE/pkg/format"
)

// Config is the merged ride configuration
type Config struct {
	Formats  FormatsConfig  `koanf:"formats"`
	Files    FilesConfig    `koanf:"files"`
	Keywords KeywordsConfig `koanf:"keywords"`
	Output   OutputConfig   `koanf:"output"`
}

// FormatsConfig selects serialization formats
type FormatsConfig struct {
	Default string `koanf:"default"`
}

// FilesConfig controls how directories are turned into suites
type FilesConfig struct {
	InitName string   `koanf:"init_name"`
	Ignore   []string `koanf:"ignore"`
}

// KeywordsConfig controls keyword collection
type KeywordsConfig struct {
	RecursiveSuites bool `koanf:"recursive_suites"`
}

// OutputConfig selects the CLI output format
type OutputConfig struct {
	Format string `koanf:"format"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUser: true, SkipEnv: true})
	if err != nil {
		// The embedded defaults are part of the binary; failing to read
		// them is a build problem.
		panic(err)
	}
	return cfg
}

// Validate checks values that cannot be expressed through types
func (c *Config) Validate() error {
	if _, err := format.ByName(c.Formats.Default); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid formats.default").
			WithDetail("value", c.Formats.Default)
	}
	if c.Files.InitName == "" {
		return errors.New(errors.ErrConfigParse, "files.init_name must not be empty")
	}
	return nil
}
