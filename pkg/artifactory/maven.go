package artifactory

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/smarter-travel-media/artificium/pkg/auth"
	"github.com/smarter-travel-media/artificium/pkg/http"
	"github.com/smarter-travel-media/artificium/pkg/search"
)

// MavenConfig configures construction of a new MavenClient.
type MavenConfig struct {
	// BaseURL is the root of the Artifactory installation, e.g.
	// "https://artifactory.example.com/artifactory".
	BaseURL string

	// Repository is the repository searches are done against, e.g.
	// "libs-release-local" or "libs-snapshot-local".
	Repository string

	// Snapshot marks the repository as containing SNAPSHOT (integration)
	// versions, which require a different search call to determine the
	// latest version.
	Snapshot bool

	// Username and Password are attached as basic auth when both are set.
	// Setting only one of them means anonymous access, not an error.
	Username string
	Password string

	// Auth overrides Username/Password with an arbitrary authentication
	// scheme (bearer token, API key header, ...).
	Auth auth.Authenticator

	// HTTPClient overrides the default transport. Timeout only applies to the
	// default transport.
	HTTPClient http.Client
	Timeout    time.Duration

	// VersionAPI overrides the default search service. Used for testing and
	// for servers with nonstandard search endpoints.
	VersionAPI search.VersionAPI

	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// MavenClient is a Client for Maven repository layouts.
//
// Searches are limited to the repository set when creating the client: a
// search for a release artifact will not work if the repository holds only
// integration artifacts.
//
// The client holds no mutable state and is safe for concurrent use.
type MavenClient struct {
	snapshot bool
	versions search.VersionAPI
	urls     mavenURLGenerator
	log      *slog.Logger
}

var _ Client = (*MavenClient)(nil)

// NewMavenClient creates a new Maven layout client from the supplied
// configuration. No network requests are made until a lookup operation is
// called.
func NewMavenClient(cfg MavenConfig) *MavenClient {
	versions := cfg.VersionAPI
	if versions == nil {
		httpClient := cfg.HTTPClient
		if httpClient == nil {
			authenticator := cfg.Auth
			if authenticator == nil && cfg.Username != "" && cfg.Password != "" {
				authenticator = auth.BasicAuth{Username: cfg.Username, Password: cfg.Password}
			}
			timeout := cfg.Timeout
			if timeout == 0 {
				timeout = http.DefaultTimeout
			}
			httpClient = http.NewHTTPClient(timeout, authenticator)
		}
		versions = search.NewService(httpClient, cfg.BaseURL, cfg.Repository)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &MavenClient{
		snapshot: cfg.Snapshot,
		versions: versions,
		urls: mavenURLGenerator{
			base: strings.TrimRight(cfg.BaseURL, "/"),
			repo: cfg.Repository,
		},
		log: logger,
	}
}

// GetVersionURL returns the URL of a specific version of the artifact. The
// full name is the group and artifact joined by dots, e.g.
// "com.example.users.service". Makes no network requests.
func (c *MavenClient) GetVersionURL(fullName, packaging, version, descriptor string) (string, error) {
	group, artifact, err := splitName(fullName)
	if err != nil {
		return "", err
	}
	return c.urls.versionURL(group, artifact, packaging, version, descriptor), nil
}

// GetLatestVersion returns the most recent version of the artifact. Snapshot
// clients search the integration stream; release clients ask the server for
// the latest release directly. Makes a single network request.
func (c *MavenClient) GetLatestVersion(ctx context.Context, fullName string) (string, error) {
	group, artifact, err := splitName(fullName)
	if err != nil {
		return "", err
	}

	var version string
	if c.snapshot {
		version, err = c.latestSnapshot(ctx, group, artifact)
	} else {
		version, err = c.versions.MostRecentRelease(ctx, group, artifact)
	}
	if err != nil {
		return "", c.translateNotFound(group, artifact, err)
	}

	c.log.Debug("resolved latest version", "group", group, "artifact", artifact, "version", version)
	return version, nil
}

// GetLatestVersions returns up to limit versions of the artifact, most recent
// first per the server's ordering. Makes a single network request.
func (c *MavenClient) GetLatestVersions(ctx context.Context, fullName string, limit int) ([]string, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	group, artifact, err := splitName(fullName)
	if err != nil {
		return nil, err
	}

	versions, err := c.versions.MostRecentVersions(ctx, group, artifact, limit, c.snapshot)
	if err != nil {
		return nil, c.translateNotFound(group, artifact, err)
	}
	if len(versions) == 0 {
		return nil, c.noMatchingVersions(group, artifact, nil)
	}

	c.log.Debug("resolved latest versions", "group", group, "artifact", artifact, "count", len(versions))
	return versions, nil
}

// GetLatestVersionURL returns the URL of the most recent version of the
// artifact with the given packaging. Makes a single network request.
func (c *MavenClient) GetLatestVersionURL(ctx context.Context, fullName, packaging string) (string, error) {
	version, err := c.GetLatestVersion(ctx, fullName)
	if err != nil {
		return "", err
	}
	return c.GetVersionURL(fullName, packaging, version, "")
}

func (c *MavenClient) latestSnapshot(ctx context.Context, group, artifact string) (string, error) {
	versions, err := c.versions.MostRecentVersions(ctx, group, artifact, 1, true)
	if err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", c.noMatchingVersions(group, artifact, nil)
	}
	return versions[0], nil
}

// translateNotFound turns a transport 404 into a NoMatchingVersionsError.
// The server reports an unknown artifact as a 404 when no part of its path
// exists and as an empty result list otherwise; callers see one error for
// both. Every other error passes through unchanged.
func (c *MavenClient) translateNotFound(group, artifact string, err error) error {
	if http.IsNotFound(err) {
		return c.noMatchingVersions(group, artifact, err)
	}
	return err
}

func (c *MavenClient) noMatchingVersions(group, artifact string, cause error) error {
	return &NoMatchingVersionsError{
		Group:       group,
		Name:        artifact,
		Integration: c.snapshot,
		Cause:       cause,
	}
}

// splitName splits a full artifact name into group and artifact on the last
// dot.
func splitName(fullName string) (group, artifact string, err error) {
	idx := strings.LastIndex(fullName, ".")
	if idx < 0 {
		return "", "", ErrMalformedName
	}
	return fullName[:idx], fullName[idx+1:], nil
}
