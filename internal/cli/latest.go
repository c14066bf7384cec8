package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewLatestCmd creates the latest command.
func NewLatestCmd() *cobra.Command {
	var (
		showURL   bool
		packaging string
	)

	cmd := &cobra.Command{
		Use:   "latest NAME",
		Short: "Print the most recent version of an artifact",
		Long: `Print the most recent version of an artifact in the configured repository.

Repositories holding SNAPSHOT versions must be marked with snapshot: true in
the configuration (or the --snapshot flag); release repositories are searched
for the latest release.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLatest(cmd.Context(), args[0], showURL, packaging)
		},
	}

	cmd.Flags().BoolVar(&showURL, "url", false, "Print the download URL instead of the version")
	cmd.Flags().StringVar(&packaging, "packaging", "jar", "Packaging used when printing the URL")

	return cmd
}

func runLatest(ctx context.Context, name string, showURL bool, packaging string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	if showURL {
		url, err := client.GetLatestVersionURL(ctx, name, packaging)
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	}

	version, err := client.GetLatestVersion(ctx, name)
	if err != nil {
		return err
	}

	fmt.Println(version)
	return nil
}
