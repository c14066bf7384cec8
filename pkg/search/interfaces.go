//go:generate mockgen -destination=mocks/search.go . VersionAPI
package search

import "context"

// VersionAPI defines version discovery operations against the artifact
// server's search API. Implementations must be safe for concurrent use.
type VersionAPI interface {
	// MostRecentVersions returns up to limit versions of the given artifact,
	// newest first, restricted to the integration (snapshot) stream when
	// integration is true and to the release stream otherwise. A search that
	// matches nothing returns an empty slice and a nil error.
	MostRecentVersions(ctx context.Context, group, artifact string, limit int, integration bool) ([]string, error)

	// MostRecentRelease returns the most recent release version of the given
	// artifact.
	MostRecentRelease(ctx context.Context, group, artifact string) (string, error)
}
