package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewURLCmd creates the url command.
func NewURLCmd() *cobra.Command {
	var descriptor string

	cmd := &cobra.Command{
		Use:   "url NAME PACKAGING VERSION",
		Short: "Print the URL of a specific artifact version",
		Long: `Print the download URL of a specific version of an artifact.

The name is the full group and artifact, e.g. "com.example.users.service".
This command builds the URL locally and never contacts the server.`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return runURL(args[0], args[1], args[2], descriptor)
		},
	}

	cmd.Flags().StringVar(&descriptor, "descriptor", "", "Artifact variant to select (sources, javadoc, ...)")

	return cmd
}

func runURL(name, packaging, version, descriptor string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	url, err := client.GetVersionURL(name, packaging, version, descriptor)
	if err != nil {
		return err
	}

	fmt.Println(url)
	return nil
}
