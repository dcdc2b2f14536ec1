// Package profile models X/Twitter profile handles and the URL forms the
// platform exposes them under.
package profile

import (
	"fmt"
	"regexp"
	"strings"

	"xvidzip/pkg/errors"
)

// handlePattern is the validation pattern a normalized handle must match
// before any network operation takes place.
var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,50}$`)

const (
	twitterHost = "https://twitter.com"
	xHost       = "https://x.com"
)

// Normalize strips surrounding whitespace and a leading "@" from a raw
// handle. Normalization is idempotent.
func Normalize(raw string) string {
	handle := strings.TrimSpace(raw)
	handle = strings.TrimPrefix(handle, "@")
	return strings.TrimSpace(handle)
}

// Validate checks a normalized handle against the validation pattern.
func Validate(handle string) error {
	if !handlePattern.MatchString(handle) {
		return errors.New(errors.ErrorTypeConfig,
			fmt.Sprintf("invalid username %q: must be 1-50 alphanumeric or underscore characters", handle))
	}
	return nil
}

// TimelineURLs returns the equivalent profile timeline URL forms, in probe
// order. The platform is reachable under both hostnames; enumeration
// accepts whichever yields results first.
func TimelineURLs(handle string) []string {
	return []string{
		fmt.Sprintf("%s/%s", twitterHost, handle),
		fmt.Sprintf("%s/%s", xHost, handle),
	}
}

// MediaURL returns the media-focused view of a profile, used for retrieval.
func MediaURL(handle string) string {
	return fmt.Sprintf("%s/%s/media", xHost, handle)
}
