// Package config loads reportmix settings.
//
// Settings are read, lowest precedence first, from defaults, a reportmix.yaml
// file, .env files and REPORTMIX_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable reportmix reads.
const EnvPrefix = "REPORTMIX"

// Config represents the complete reportmix configuration.
type Config struct {
	Log      LogConfig      `mapstructure:"log" json:"log" yaml:"log"`
	Timezone string         `mapstructure:"timezone" json:"timezone" yaml:"timezone"`
	Pipeline PipelineConfig `mapstructure:"pipeline" json:"pipeline" yaml:"pipeline"`
	Session  SessionConfig  `mapstructure:"session" json:"session" yaml:"session"`
	Auth     AuthConfig     `mapstructure:"auth" json:"auth" yaml:"auth"`
	Output   OutputConfig   `mapstructure:"output" json:"output" yaml:"output"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level" yaml:"level"`
	Format string `mapstructure:"format" json:"format" yaml:"format"`
}

// PipelineConfig contains cleaning pipeline settings.
type PipelineConfig struct {
	Parallel bool `mapstructure:"parallel" json:"parallel" yaml:"parallel"`
}

// SessionConfig contains session store settings.
type SessionConfig struct {
	Dir string `mapstructure:"dir" json:"dir" yaml:"dir"`
}

// AuthConfig holds the single set of credentials accepted by session login.
type AuthConfig struct {
	Username string `mapstructure:"username" json:"username" yaml:"username"`
	Password string `mapstructure:"password" json:"-" yaml:"-"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Colors bool `mapstructure:"colors" json:"colors" yaml:"colors"`
}

// Dir returns the configuration directory path.
func Dir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "reportmix")
}

// Load reads configuration. cfgFile overrides the reportmix.yaml search.
func Load(cfgFile string) (*Config, error) {
	dir := Dir()

	if err := loadEnvFiles(".env", filepath.Join(dir, ".env")); err != nil {
		return nil, err
	}

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("reportmix")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("failed to validate config: %w", err)
	}

	return &cfg, nil
}

// Location returns the time zone used for calendar days and zone-less
// timestamps.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func setDefaults(v *viper.Viper, dir string) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("timezone", "Local")

	v.SetDefault("pipeline.parallel", false)

	v.SetDefault("session.dir", filepath.Join(dir, "sessions"))

	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "admin123")

	v.SetDefault("output.colors", true)
}

// loadEnvFiles loads the .env files that exist. Variables already set in the
// process environment win.
func loadEnvFiles(files ...string) error {
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

func validate(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[cfg.Log.Format] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	if _, err := cfg.Location(); err != nil {
		return err
	}

	if cfg.Session.Dir == "" {
		return errors.New("session directory must not be empty")
	}
	return nil
}
