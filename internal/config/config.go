// Package config loads settings for the saes command.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load,
// e.g. SAES_LEGACY.
const EnvPrefix = "SAES"

// Config holds the command's settings.
//
// The cipher itself has no configuration: block size, key size,
// and round count are fixed.
type Config struct {
	// Legacy makes malformed hex input produce 0xFFFF and lets
	// the cipher run anyway, and makes an unknown mode a
	// silent no-op.
	Legacy bool `mapstructure:"legacy"`
	// LogLevel is a zerolog level name.
	LogLevel string `mapstructure:"log_level"`
	// ConfigFile is the file the settings were read from, if
	// any.
	ConfigFile string `mapstructure:"-"`
}

// Default returns the default settings.
func Default() *Config {
	return &Config{
		Legacy:   false,
		LogLevel: "info",
	}
}

// Load reads settings from file and the environment, the
// environment taking precedence.
//
// If file is empty, Load looks for saes.yaml in the working
// directory, $HOME/.saes, and /etc/saes, and a missing file is
// not an error.
func Load(file string) (*Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault("legacy", def.Legacy)
	v.SetDefault("log_level", def.LogLevel)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("saes")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.saes")
		v.AddConfigPath("/etc/saes")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &nf) {
			return nil, fmt.Errorf("config: unable to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unable to decode config: %w", err)
	}
	cfg.ConfigFile = v.ConfigFileUsed()
	return cfg, nil
}
