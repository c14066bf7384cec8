//go:generate mockgen -destination=mocks/artifactory.go . Client

// Package artifactory provides clients that resolve logical artifact
// coordinates into download URLs and discover the most recent versions of an
// artifact against an Artifactory server.
//
// How artifact names, packaging, and descriptors are interpreted depends on
// the repository layout. A Maven layout client reads the full name as group
// plus artifact (e.g. "com.example.project.service"); a flat-namespace layout
// would read it as a single unique name.
package artifactory

import "context"

// DefaultVersionLimit is the number of versions returned by lookups when the
// caller does not ask for a specific count.
const DefaultVersionLimit = 5

// Client resolves artifact coordinates against a single repository of an
// artifact server. Implementations are safe for concurrent use.
type Client interface {
	// GetVersionURL returns the URL of a specific version of the artifact,
	// optionally selecting a variant (sources, javadoc, ...) via descriptor.
	// An empty descriptor selects the primary artifact. Makes no network
	// requests.
	GetVersionURL(fullName, packaging, version, descriptor string) (string, error)

	// GetLatestVersion returns the most recent version of the artifact under
	// the client's configured release or snapshot stream. Makes a single
	// network request.
	GetLatestVersion(ctx context.Context, fullName string) (string, error)

	// GetLatestVersions returns up to limit versions of the artifact, most
	// recent first. Makes a single network request.
	GetLatestVersions(ctx context.Context, fullName string, limit int) ([]string, error)

	// GetLatestVersionURL returns the URL of the most recent version of the
	// artifact with the given packaging. Makes a single network request.
	GetLatestVersionURL(ctx context.Context, fullName, packaging string) (string, error)
}
