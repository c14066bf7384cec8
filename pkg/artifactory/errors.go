package artifactory

import (
	stderrors "errors"
	"fmt"
)

// Common client errors.
var (
	// ErrMalformedName is returned when a full artifact name cannot be split
	// into a group and an artifact.
	ErrMalformedName = fmt.Errorf("artifact name must contain a group and an artifact separated by '.'")

	// ErrInvalidLimit is returned when a version limit is zero or negative.
	ErrInvalidLimit = fmt.Errorf("version limit must be positive")
)

// NoMatchingVersionsError is returned when no version of an artifact exists
// under the client's configured release or snapshot stream. The server may
// report this either as a 404 or as an empty result list; both end up here.
// Cause carries the underlying transport error in the 404 case and is nil
// otherwise.
type NoMatchingVersionsError struct {
	Group       string
	Name        string
	Integration bool
	Cause       error
}

// Error returns a message naming the artifact coordinates and the stream that
// was searched.
func (e *NoMatchingVersionsError) Error() string {
	stream := "non-integration"
	if e.Integration {
		stream = "integration"
	}
	return fmt.Sprintf(
		"no %s versions of %s.%s could be found; it might be the case that there "+
			"have not been any %s deployments done yet", stream, e.Group, e.Name, stream)
}

// Unwrap returns the underlying transport error, if any.
func (e *NoMatchingVersionsError) Unwrap() error {
	return e.Cause
}

// IsNoMatchingVersions reports whether err is a NoMatchingVersionsError.
func IsNoMatchingVersions(err error) bool {
	var noMatch *NoMatchingVersionsError
	return stderrors.As(err, &noMatch)
}
