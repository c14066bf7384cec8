package cli

import (
	"fmt"

	"github.com/smarter-travel-media/artificium/pkg/config"
	"github.com/smarter-travel-media/artificium/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigCmd creates the config command with subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "Create and inspect the artificium configuration file",
	}

	cmd.AddCommand(
		newConfigInitCmd(),
		newConfigShowCmd(),
	)

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init BASE_URL REPOSITORY",
		Short: "Create a config file",
		Long:  "Create a config file for the given server base URL and repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runConfigInit(args[0], args[1], force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  "Show the configuration after applying defaults and command line overrides",
		RunE: func(*cobra.Command, []string) error {
			return runConfigShow()
		},
	}

	return cmd
}

func runConfigInit(baseURL, repository string, force bool) error {
	path := ""
	if ConfigPath != nil {
		path = *ConfigPath
	}
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	if !force {
		if existing, err := config.LoadConfig(path); err == nil && existing.Server.BaseURL != "" {
			return errors.Wrapf(errors.ErrConfigFileCreate, "%s already exists, use --force to overwrite", path)
		}
	}

	cfg := config.DefaultConfig()
	cfg.Server.BaseURL = baseURL
	cfg.Server.Repository = repository
	if Snapshot != nil && *Snapshot {
		cfg.Server.Snapshot = true
	}

	if err := cfg.SaveConfig(path); err != nil {
		return err
	}

	fmt.Printf("Wrote config to %s\n", path)
	return nil
}

func runConfigShow() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigEncode, err.Error())
	}

	fmt.Print(string(data))
	return nil
}
