package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/smarter-travel-media/artificium/internal/cli"
	"github.com/spf13/cobra"
)

var (
	configPath string
	baseURL    string
	repository string
	snapshot   bool
	verbose    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "artificium",
		Short: "A client for Artifactory version and URL resolution",
		Long: `artificium resolves artifact coordinates against an Artifactory server:
- url: build the download URL for a specific version
- latest: find the most recent version of an artifact
- versions: list the most recent versions of an artifact`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: auto-detect)")
	cmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "Artifactory base URL (overrides config)")
	cmd.PersistentFlags().StringVar(&repository, "repo", "", "repository to search (overrides config)")
	cmd.PersistentFlags().BoolVar(&snapshot, "snapshot", false, "treat the repository as holding SNAPSHOT versions")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.BaseURL = &baseURL
	cli.Repository = &repository
	cli.Snapshot = &snapshot
	cli.Verbose = &verbose

	// Add subcommands
	cmd.AddCommand(
		cli.NewURLCmd(),
		cli.NewLatestCmd(),
		cli.NewVersionsCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
