package cli

import (
	"github.com/smarter-travel-media/artificium/internal/logger"
	"github.com/smarter-travel-media/artificium/pkg/artifactory"
	"github.com/smarter-travel-media/artificium/pkg/config"
	"github.com/smarter-travel-media/artificium/pkg/errors"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	BaseURL    *string
	Repository *string
	Snapshot   *bool
	Verbose    *bool
)

// loadConfig loads the configuration file and applies command line overrides.
func loadConfig() (*config.Config, error) {
	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}
	if configPath == "" {
		var err error
		configPath, err = config.DefaultConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	applyFlagOverrides(cfg)
	return cfg, nil
}

func applyFlagOverrides(cfg *config.Config) {
	if BaseURL != nil && *BaseURL != "" {
		cfg.Server.BaseURL = *BaseURL
	}
	if Repository != nil && *Repository != "" {
		cfg.Server.Repository = *Repository
	}
	if Snapshot != nil && *Snapshot {
		cfg.Server.Snapshot = true
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}
}

// newClient builds an artifact client from the effective configuration.
func newClient(cfg *config.Config) (artifactory.Client, error) {
	if cfg.Server.BaseURL == "" {
		return nil, errors.ErrBaseURLMissing
	}
	if cfg.Server.Repository == "" {
		return nil, errors.ErrRepositoryMissing
	}

	logger.InitLogger(cfg.Settings.LogLevel)

	return artifactory.NewMavenClient(artifactory.MavenConfig{
		BaseURL:    cfg.Server.BaseURL,
		Repository: cfg.Server.Repository,
		Snapshot:   cfg.Server.Snapshot,
		Auth:       cfg.Server.Auth.ToAuthenticator(),
		Timeout:    cfg.Settings.HTTPTimeout,
		Logger:     logger.GetLogger(),
	}), nil
}
