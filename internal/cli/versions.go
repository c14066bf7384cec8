package cli

import (
	"context"
	"fmt"

	hashiver "github.com/hashicorp/go-version"
	"github.com/smarter-travel-media/artificium/pkg/errors"
	"github.com/spf13/cobra"
)

// NewVersionsCmd creates the versions command.
func NewVersionsCmd() *cobra.Command {
	var (
		limit      int
		constraint string
	)

	cmd := &cobra.Command{
		Use:   "versions NAME",
		Short: "Print the most recent versions of an artifact",
		Long: `Print the most recent versions of an artifact, most recent first.

The server decides the ordering; versions are printed exactly as returned.
A --constraint (e.g. ">= 1.2, < 2.0") filters the list locally; versions
that are not parseable as semantic versions are dropped by the filter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersions(cmd.Context(), args[0], limit, constraint)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of versions to print (default from config)")
	cmd.Flags().StringVar(&constraint, "constraint", "", "Version constraint to filter by")

	return cmd
}

func runVersions(ctx context.Context, name string, limit int, constraint string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	if limit == 0 {
		limit = cfg.Settings.VersionLimit
	}

	versions, err := client.GetLatestVersions(ctx, name, limit)
	if err != nil {
		return err
	}

	filtered, err := filterByConstraint(versions, constraint)
	if err != nil {
		return err
	}
	if len(filtered) == 0 {
		fmt.Printf("No versions of %s match constraint %q\n", name, constraint)
		return nil
	}

	for _, v := range filtered {
		fmt.Println(v)
	}
	return nil
}

// filterByConstraint drops versions that do not satisfy the constraint,
// preserving the input order. Versions that cannot be parsed are skipped.
// An empty constraint returns the input unchanged.
func filterByConstraint(versions []string, constraint string) ([]string, error) {
	if constraint == "" {
		return versions, nil
	}

	constraints, err := hashiver.NewConstraint(constraint)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid constraint %q", constraint)
	}

	filtered := make([]string, 0, len(versions))
	for _, raw := range versions {
		parsed, err := hashiver.NewVersion(raw)
		if err != nil {
			continue
		}
		if constraints.Check(parsed) {
			filtered = append(filtered, raw)
		}
	}
	return filtered, nil
}
