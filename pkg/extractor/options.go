package extractor

import (
	"fmt"

	"xvidzip/pkg/errors"
)

// Options is the structured option record handed to the extraction engine.
// It is validated at the adapter boundary; the engine never sees an
// open-ended option bag from this codebase.
type Options struct {
	// Limit caps the number of playlist items processed; 0 means unbounded.
	Limit int
	// CookieFile is a path to authentication material in Netscape
	// browser-cookie-export format. Empty means unauthenticated.
	CookieFile string
	// Format is the quality/format selector expression.
	Format string
	// OutputTemplate names retrieved files, relative to the target
	// directory (e.g. "%(id)s.%(ext)s").
	OutputTemplate string
	// MergeFormat is the container used when separate audio and video
	// streams are merged.
	MergeFormat string
	// TolerateItemErrors makes the engine skip failing items instead of
	// aborting the whole batch.
	TolerateItemErrors bool
}

// Validate checks the option record for structural problems.
func (o Options) Validate() error {
	if o.Limit < 0 {
		return errors.New(errors.ErrorTypeConfig, "item limit cannot be negative")
	}
	if o.Format == "" {
		return errors.New(errors.ErrorTypeConfig, "format selector is required")
	}
	if o.OutputTemplate == "" {
		return errors.New(errors.ErrorTypeConfig, "output template is required")
	}
	return nil
}

// playlistRange renders the Limit as the engine's playlist selection
// expression, or "" when unbounded.
func (o Options) playlistRange() string {
	if o.Limit <= 0 {
		return ""
	}
	return fmt.Sprintf("1-%d", o.Limit)
}
