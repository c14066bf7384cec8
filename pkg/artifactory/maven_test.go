package artifactory_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/smarter-travel-media/artificium/pkg/artifactory"
	clienthttp "github.com/smarter-travel-media/artificium/pkg/http"
	searchmocks "github.com/smarter-travel-media/artificium/pkg/search/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestClient builds a client backed by a VersionAPI mock. Tests that set no
// expectations on the mock double as proof that the operation under test never
// touches the network.
func newTestClient(t *testing.T, snapshot bool) (*artifactory.MavenClient, *searchmocks.MockVersionAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	versions := searchmocks.NewMockVersionAPI(ctrl)
	client := artifactory.NewMavenClient(artifactory.MavenConfig{
		BaseURL:    "https://x/artifactory",
		Repository: "libs-release",
		Snapshot:   snapshot,
		VersionAPI: versions,
	})
	return client, versions
}

func TestGetVersionURL(t *testing.T) {
	client, _ := newTestClient(t, false)

	url, err := client.GetVersionURL("com.example.users.service", "war", "1.6.0", "")
	require.NoError(t, err)
	assert.Equal(t, "https://x/artifactory/libs-release/com/example/users/service/1.6.0/service-1.6.0.war", url)
}

func TestGetVersionURL_WithDescriptor(t *testing.T) {
	client, _ := newTestClient(t, false)

	url, err := client.GetVersionURL("com.example.users.service", "jar", "1.4.5", "sources")
	require.NoError(t, err)
	assert.Equal(t, "https://x/artifactory/libs-release/com/example/users/service/1.4.5/service-1.4.5-sources.jar", url)
}

func TestGetVersionURL_TrailingSlashBaseURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := artifactory.NewMavenClient(artifactory.MavenConfig{
		BaseURL:    "https://x/artifactory/",
		Repository: "libs-release",
		VersionAPI: searchmocks.NewMockVersionAPI(ctrl),
	})

	url, err := client.GetVersionURL("com.example.users.service", "war", "1.6.0", "")
	require.NoError(t, err)
	assert.Equal(t, "https://x/artifactory/libs-release/com/example/users/service/1.6.0/service-1.6.0.war", url)
}

func TestGetVersionURL_MalformedName(t *testing.T) {
	client, _ := newTestClient(t, false)

	_, err := client.GetVersionURL("service", "war", "1.6.0", "")
	assert.ErrorIs(t, err, artifactory.ErrMalformedName)
}

func TestGetLatestVersion_Release(t *testing.T) {
	client, versions := newTestClient(t, false)
	versions.EXPECT().
		MostRecentRelease(gomock.Any(), "com.example.users", "service").
		Return("1.6.0", nil)

	version, err := client.GetLatestVersion(context.Background(), "com.example.users.service")
	require.NoError(t, err)
	assert.Equal(t, "1.6.0", version)
}

func TestGetLatestVersion_Snapshot(t *testing.T) {
	client, versions := newTestClient(t, true)
	versions.EXPECT().
		MostRecentVersions(gomock.Any(), "com.example.users", "service", 1, true).
		Return([]string{"1.7.0-SNAPSHOT"}, nil)

	version, err := client.GetLatestVersion(context.Background(), "com.example.users.service")
	require.NoError(t, err)
	assert.Equal(t, "1.7.0-SNAPSHOT", version)
}

func TestGetLatestVersion_SnapshotNoVersions(t *testing.T) {
	client, versions := newTestClient(t, true)
	versions.EXPECT().
		MostRecentVersions(gomock.Any(), "com.example.users", "service", 1, true).
		Return(nil, nil)

	_, err := client.GetLatestVersion(context.Background(), "com.example.users.service")
	require.Error(t, err)

	var noMatch *artifactory.NoMatchingVersionsError
	require.ErrorAs(t, err, &noMatch)
	assert.Nil(t, noMatch.Cause)
	assert.True(t, noMatch.Integration)
}

func TestGetLatestVersion_NotFoundTranslated(t *testing.T) {
	statusErr := &clienthttp.StatusError{StatusCode: http.StatusNotFound, URL: "https://x/artifactory"}
	client, versions := newTestClient(t, false)
	versions.EXPECT().
		MostRecentRelease(gomock.Any(), "com.example.users", "service").
		Return("", statusErr)

	_, err := client.GetLatestVersion(context.Background(), "com.example.users.service")
	require.Error(t, err)

	var noMatch *artifactory.NoMatchingVersionsError
	require.ErrorAs(t, err, &noMatch)
	assert.Equal(t, statusErr, noMatch.Cause)
	assert.Equal(t, "com.example.users", noMatch.Group)
	assert.Equal(t, "service", noMatch.Name)
	assert.Contains(t, noMatch.Error(), "non-integration")
}

func TestGetLatestVersion_OtherTransportErrorPassesThrough(t *testing.T) {
	statusErr := &clienthttp.StatusError{StatusCode: http.StatusInternalServerError, URL: "https://x/artifactory"}
	client, versions := newTestClient(t, false)
	versions.EXPECT().
		MostRecentRelease(gomock.Any(), "com.example.users", "service").
		Return("", statusErr)

	_, err := client.GetLatestVersion(context.Background(), "com.example.users.service")
	assert.Same(t, error(statusErr), err)
	assert.False(t, artifactory.IsNoMatchingVersions(err))
}

func TestGetLatestVersions(t *testing.T) {
	client, versions := newTestClient(t, false)
	versions.EXPECT().
		MostRecentVersions(gomock.Any(), "com.example.users", "service", 3, false).
		Return([]string{"1.6.0", "1.5.4", "1.5.3"}, nil)

	got, err := client.GetLatestVersions(context.Background(), "com.example.users.service", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.6.0", "1.5.4", "1.5.3"}, got)
}

func TestGetLatestVersions_SnapshotStream(t *testing.T) {
	client, versions := newTestClient(t, true)
	versions.EXPECT().
		MostRecentVersions(gomock.Any(), "com.example.users", "service", artifactory.DefaultVersionLimit, true).
		Return([]string{"1.7.0-SNAPSHOT"}, nil)

	got, err := client.GetLatestVersions(context.Background(), "com.example.users.service", artifactory.DefaultVersionLimit)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.7.0-SNAPSHOT"}, got)
}

func TestGetLatestVersions_InvalidLimit(t *testing.T) {
	// No expectations on the mock: the limit check runs before any request.
	client, _ := newTestClient(t, false)

	for _, limit := range []int{0, -1} {
		_, err := client.GetLatestVersions(context.Background(), "com.example.users.service", limit)
		assert.ErrorIs(t, err, artifactory.ErrInvalidLimit)
	}
}

func TestGetLatestVersions_EmptyResult(t *testing.T) {
	client, versions := newTestClient(t, false)
	versions.EXPECT().
		MostRecentVersions(gomock.Any(), "com.example.users", "service", 5, false).
		Return([]string{}, nil)

	_, err := client.GetLatestVersions(context.Background(), "com.example.users.service", 5)
	require.Error(t, err)

	var noMatch *artifactory.NoMatchingVersionsError
	require.ErrorAs(t, err, &noMatch)
	assert.Nil(t, noMatch.Cause)
	assert.Nil(t, errors.Unwrap(noMatch))
}

func TestGetLatestVersions_NotFoundTranslated(t *testing.T) {
	statusErr := &clienthttp.StatusError{StatusCode: http.StatusNotFound, URL: "https://x/artifactory"}
	client, versions := newTestClient(t, false)
	versions.EXPECT().
		MostRecentVersions(gomock.Any(), "com.example.users", "service", 5, false).
		Return(nil, statusErr)

	_, err := client.GetLatestVersions(context.Background(), "com.example.users.service", 5)
	require.True(t, artifactory.IsNoMatchingVersions(err))
	assert.ErrorIs(t, err, statusErr)
}

func TestGetLatestVersionURL(t *testing.T) {
	client, versions := newTestClient(t, false)
	versions.EXPECT().
		MostRecentRelease(gomock.Any(), "com.example.users", "service").
		Return("1.6.0", nil)

	url, err := client.GetLatestVersionURL(context.Background(), "com.example.users.service", "war")
	require.NoError(t, err)
	assert.Equal(t, "https://x/artifactory/libs-release/com/example/users/service/1.6.0/service-1.6.0.war", url)
}

func TestNoMatchingVersionsError_Message(t *testing.T) {
	err := &artifactory.NoMatchingVersionsError{
		Group:       "com.example.users",
		Name:        "service",
		Integration: true,
	}
	assert.Contains(t, err.Error(), "integration versions of com.example.users.service")
	assert.NotContains(t, err.Error(), "non-integration")
}
