// Package config provides configuration for the artificium CLI. It handles
// loading and saving YAML configuration files describing the Artifactory
// server, the repository to search, and optional authentication, with
// sensible defaults for everything else.
package config

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/smarter-travel-media/artificium/pkg/artifactory"
	"github.com/smarter-travel-media/artificium/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File permissions for created config files and directories.
const (
	dirMode  = os.FileMode(0o755)
	fileMode = os.FileMode(0o600)
)

// Default configuration values.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultLogLevel is the default log level for CLI output.
	DefaultLogLevel = "info"
)

// Config represents the application configuration.
type Config struct {
	// Server describes the Artifactory installation and repository.
	Server ServerConfig `yaml:"server"`

	// Settings holds general application settings.
	Settings Settings `yaml:"settings"`
}

// ServerConfig describes a single Artifactory server and repository.
type ServerConfig struct {
	// BaseURL is the root of the Artifactory installation, e.g.
	// "https://artifactory.example.com/artifactory".
	BaseURL string `yaml:"base_url"`

	// Repository is the repository searches are done against, e.g.
	// "libs-release-local".
	Repository string `yaml:"repository"`

	// Snapshot marks the repository as holding SNAPSHOT (integration)
	// versions.
	Snapshot bool `yaml:"snapshot"`

	// Auth selects the authentication scheme, if any.
	Auth *AuthConfig `yaml:"auth,omitempty"`
}

// Settings represents general application settings.
type Settings struct {
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
	VersionLimit int           `yaml:"version_limit"`
	LogLevel     string        `yaml:"log_level"` // error, warn, info, debug
}

// DefaultConfig returns a configuration with sensible defaults. The server
// section is left empty; base URL and repository come from the config file or
// command line flags.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			HTTPTimeout:  DefaultHTTPTimeout,
			VersionLimit: artifactory.DefaultVersionLimit,
			LogLevel:     DefaultLogLevel,
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// default configuration.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return &config, nil
}

// SaveConfig saves configuration to a file, creating parent directories as
// needed.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), dirMode); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	if err := os.WriteFile(absPath, data, fileMode); err != nil {
		return errors.Wrap(errors.ErrConfigFileCreate, err.Error())
	}

	return nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Server.BaseURL != "" {
		if _, err := url.Parse(c.Server.BaseURL); err != nil {
			return errors.Wrapf(err, "invalid base URL %q", c.Server.BaseURL)
		}
	}
	if c.Settings.VersionLimit < 1 {
		return artifactory.ErrInvalidLimit
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Settings.HTTPTimeout == 0 {
		c.Settings.HTTPTimeout = DefaultHTTPTimeout
	}
	if c.Settings.VersionLimit == 0 {
		c.Settings.VersionLimit = artifactory.DefaultVersionLimit
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = DefaultLogLevel
	}
}

// DefaultConfigPath returns the default location of the config file inside
// the user's config directory.
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to determine user config directory")
	}
	return filepath.Join(configDir, "artificium", "config.yaml"), nil
}
