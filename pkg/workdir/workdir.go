// Package workdir manages the ephemeral per-run directory that holds
// retrieved media before archiving.
package workdir

import (
	"fmt"
	"os"

	"xvidzip/pkg/logger"
)

// Dir is a uniquely named working directory owned by exactly one run. It
// is created empty and removed unconditionally when the run ends.
type Dir struct {
	Path string
	log  logger.Logger
}

// Create makes a fresh working directory for a run. Concurrent runs get
// distinct directories; the run ID keeps the name traceable in logs.
func Create(username, runID string) (*Dir, error) {
	short := runID
	if len(short) > 8 {
		short = short[:8]
	}
	path, err := os.MkdirTemp("", fmt.Sprintf("xvidzip_%s_%s_", username, short))
	if err != nil {
		return nil, fmt.Errorf("failed to create working directory: %w", err)
	}
	return &Dir{Path: path, log: logger.GetLogger()}, nil
}

// Remove deletes the working directory and everything in it. Cleanup is
// best-effort: a failure is logged but never overrides the run's outcome.
func (d *Dir) Remove() {
	if d == nil || d.Path == "" {
		return
	}
	if err := os.RemoveAll(d.Path); err != nil {
		d.log.WarnWithFields("failed to remove working directory", map[string]interface{}{
			"path":  d.Path,
			"error": err.Error(),
		})
	}
	d.Path = ""
}
