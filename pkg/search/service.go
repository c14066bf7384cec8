// Package search implements version discovery against Artifactory's
// search API endpoints.
package search

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/smarter-travel-media/artificium/pkg/errors"
	"github.com/smarter-travel-media/artificium/pkg/http"
)

// Search API endpoints relative to the server base URL.
const (
	versionSearchPath = "api/search/versions"
	latestVersionPath = "api/search/latestVersion"
)

// Service queries the version search endpoints of a single repository.
type Service struct {
	http    http.Client
	baseURL string
	repo    string
}

var _ VersionAPI = (*Service)(nil)

// NewService creates a new search service bound to the given server base URL
// and repository name.
func NewService(client http.Client, baseURL, repo string) *Service {
	return &Service{
		http:    client,
		baseURL: strings.TrimRight(baseURL, "/"),
		repo:    repo,
	}
}

type versionResult struct {
	Version     string `json:"version"`
	Integration bool   `json:"integration"`
}

type versionSearchResponse struct {
	Results []versionResult `json:"results"`
}

// MostRecentVersions performs one request against the version search endpoint
// and returns up to limit versions of the requested stream. The server orders
// results newest first; that order is preserved as-is.
func (s *Service) MostRecentVersions(ctx context.Context, group, artifact string, limit int, integration bool) ([]string, error) {
	body, err := s.http.Get(ctx, s.endpoint(versionSearchPath), s.query(group, artifact))
	if err != nil {
		return nil, err
	}

	var parsed versionSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed to parse version search response")
	}

	versions := make([]string, 0, limit)
	for _, result := range parsed.Results {
		if result.Integration != integration {
			continue
		}
		versions = append(versions, result.Version)
		if len(versions) == limit {
			break
		}
	}
	return versions, nil
}

// MostRecentRelease performs one request against the latest-version endpoint.
// The response body is the version string itself.
func (s *Service) MostRecentRelease(ctx context.Context, group, artifact string) (string, error) {
	body, err := s.http.Get(ctx, s.endpoint(latestVersionPath), s.query(group, artifact))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

func (s *Service) endpoint(path string) string {
	return s.baseURL + "/" + path
}

func (s *Service) query(group, artifact string) url.Values {
	return url.Values{
		"g":     []string{group},
		"a":     []string{artifact},
		"repos": []string{s.repo},
	}
}
