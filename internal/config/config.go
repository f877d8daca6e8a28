package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/toyz/fakegen/internal/errors"
	"github.com/toyz/fakegen/internal/utils"
)

// EnvPrefix is the prefix of environment overrides, e.g. FAKEGEN_COUNT
const EnvPrefix = "FAKEGEN"

// Output modes
const (
	ModeData   = "data"
	ModeSource = "source"
	ModeBoth   = "both"
)

// Output formats for data mode
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the settings shared by the CLI and the servers
type Config struct {
	// Count is the number of records to synthesize
	Count int `mapstructure:"count"`

	// Seed pins the randomness source; zero means a fresh seed per run
	Seed uint64 `mapstructure:"seed"`

	// Mode selects data, source or both
	Mode string `mapstructure:"mode"`

	// Target is the source language: typescript or go
	Target string `mapstructure:"target"`

	// Format is the data encoding: json or yaml
	Format string `mapstructure:"format"`

	// GoPackage is the package clause of emitted Go source
	GoPackage string `mapstructure:"go_package"`

	// Verbose enables detailed diagnostics
	Verbose bool `mapstructure:"verbose"`

	// Quiet only shows errors and results
	Quiet bool `mapstructure:"quiet"`

	Server ServerConfig `mapstructure:"server"`
}

// ServerConfig holds the settings of the MCP and HTTP servers
type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
	LogJSON  bool   `mapstructure:"log_json"`
	LogLevel string `mapstructure:"log_level"`
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("count", 1)
	v.SetDefault("seed", 0)
	v.SetDefault("mode", ModeData)
	v.SetDefault("target", "typescript")
	v.SetDefault("format", FormatJSON)
	v.SetDefault("go_package", "mocks")
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)

	v.SetDefault("server.http_addr", ":8089")
	v.SetDefault("server.log_json", false)
	v.SetDefault("server.log_level", "info")
}

// New creates a Viper instance with defaults, environment overrides and the
// config file. An empty configFile looks for an optional fakegen.yaml in the
// working directory and in the user config directory.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapConfigurationError(configFile, "read", err)
		}
		return v, nil
	}

	v.SetConfigName("fakegen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "fakegen"))
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, errors.WrapConfigurationError("fakegen.yaml", "read", err)
		}
	}
	return v, nil
}

// Load unmarshals and validates the configuration held by v
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapConfigurationError(v.ConfigFileUsed(), "unmarshal", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration with only defaults applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, _ := Load(v)
	return cfg
}

// Validate normalizes the configuration and rejects unknown settings
func (c *Config) Validate() error {
	if c.Count < 1 {
		c.Count = 1
	}

	c.Mode = strings.ToLower(c.Mode)
	if err := checkSetting("mode", c.Mode, ModeData, ModeSource, ModeBoth); err != nil {
		return err
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format == "yml" {
		c.Format = FormatYAML
	}
	if err := checkSetting("format", c.Format, FormatJSON, FormatYAML); err != nil {
		return err
	}

	if err := checkSetting("target", strings.ToLower(c.Target), "typescript", "ts", "go", "golang"); err != nil {
		return err
	}

	if err := utils.ValidateGoPackage("go_package")(c.GoPackage); err != nil {
		var verr utils.ValidationError
		stderrors.As(err, &verr)
		return errors.InvalidSetting("go_package", c.GoPackage).
			WithCause(err).
			WithSuggestion("The package name " + verr.Message)
	}

	if c.Verbose && c.Quiet {
		return errors.InputError("verbose and quiet cannot be combined", "Pick one of --verbose or --quiet")
	}
	return nil
}

// checkSetting rejects a value outside allowed
func checkSetting(key, value string, allowed ...string) error {
	if err := utils.IsOneOf(key, allowed...)(value); err != nil {
		return errors.InvalidSetting(key, value, allowed...)
	}
	return nil
}
