// Package grabber orchestrates the download run: discovery, retrieval and
// archive assembly for one profile.
package grabber

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"xvidzip/pkg/archive"
	"xvidzip/pkg/config"
	"xvidzip/pkg/errors"
	"xvidzip/pkg/extractor"
	"xvidzip/pkg/logger"
	"xvidzip/pkg/profile"
	"xvidzip/pkg/retry"
	"xvidzip/pkg/ui"
	"xvidzip/pkg/workdir"
)

// Grabber sequences discovery, retrieval and archive assembly and owns the
// working directory's lifetime.
type Grabber struct {
	extractor MediaExtractor
	config    *config.Config
	logger    logger.Logger
}

// Result is the outcome of a run. Archived == 0 is the successful-but-empty
// terminal state; it maps to a failure exit signal at the CLI but is not an
// error here.
type Result struct {
	RunID        string
	Handle       string
	Discovered   int
	Archived     int
	ArchivePath  string
	ArchiveBytes int64
}

// Empty reports whether the run ended with nothing archived.
func (r *Result) Empty() bool {
	return r.Archived == 0
}

// New creates a Grabber backed by the yt-dlp extraction adapter.
func New(cfg *config.Config) *Grabber {
	return NewWithExtractor(cfg, extractor.NewAdapter())
}

// NewWithExtractor creates a Grabber with an explicit extraction engine.
func NewWithExtractor(cfg *config.Config, ext MediaExtractor) *Grabber {
	return &Grabber{
		extractor: ext,
		config:    cfg,
		logger:    logger.GetLogger(),
	}
}

// Run executes one full download run for a raw username. It returns an
// error only for configuration or capability faults and archive write
// failures; zero retrieved videos is an ordinary Result.
func (g *Grabber) Run(ctx context.Context, rawUsername string) (*Result, error) {
	handle := profile.Normalize(rawUsername)
	if err := profile.Validate(handle); err != nil {
		return nil, err
	}

	// Capability check happens exactly once, before any filesystem side
	// effect.
	if err := g.extractor.EnsureInstalled(ctx); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:  newRunID(),
		Handle: handle,
	}
	log := g.logger.WithField("run_id", result.RunID).WithField("username", handle)
	log.Info("starting download run")

	wd, err := workdir.Create(handle, result.RunID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeUnknown, "failed to create working area", err)
	}
	defer wd.Remove()

	// Resolve authentication material once per run so a missing cookie
	// file warns a single time.
	cookieFile := g.cookieFile(log)

	result.Discovered = g.discover(ctx, handle, cookieFile, log)

	g.retrieve(ctx, handle, wd.Path, cookieFile, log)

	summary, err := archive.Build(wd.Path, handle, g.config.ResolveArchivePath(handle))
	if err != nil {
		return nil, errors.Wrap(errors.ErrorTypeUnknown, "archive assembly failed", err)
	}

	result.ArchivePath = summary.Path
	result.Archived = summary.Files
	result.ArchiveBytes = summary.Bytes

	if result.Empty() {
		log.Warn("no videos were downloaded")
		ui.PrintEmptyGuidance()
		return result, nil
	}

	for _, entry := range summary.Entries {
		ui.PrintEntry(entry.Name, entry.Size)
	}
	log.InfoWithFields("archive created", map[string]interface{}{
		"path":  summary.Path,
		"files": summary.Files,
		"bytes": summary.Bytes,
	})
	ui.PrintSuccess(fmt.Sprintf("Archived %d video(s) to %s (%.1f MB)",
		summary.Files, summary.Path, float64(summary.Bytes)/(1024*1024)))

	return result, nil
}

// discover enumerates the profile's videos for informational output. It
// probes the equivalent timeline URL forms in order and accepts the first
// that yields results; every failure is swallowed because discovery never
// gates retrieval.
func (g *Grabber) discover(ctx context.Context, handle, cookieFile string, log logger.Logger) int {
	opts := extractor.Options{
		Limit:              g.config.Download.Limit,
		CookieFile:         cookieFile,
		Format:             g.config.QualitySelector(),
		OutputTemplate:     g.config.Extractor.OutputTemplate,
		TolerateItemErrors: true,
	}

	retryCfg := &retry.Config{
		MaxAttempts: g.config.Extractor.MaxRetries,
		Backoff:     retry.DefaultExponentialBackoff(),
		RetryIf:     retry.DefaultRetryIf,
		Context:     ctx,
		Logger:      log,
	}

	for _, url := range profile.TimelineURLs(handle) {
		refs, err := retry.DoWithResult(func() ([]extractor.MediaRef, error) {
			return g.extractor.Enumerate(ctx, url, opts)
		}, retryCfg)
		if err != nil {
			log.DebugWithFields("enumeration attempt failed", map[string]interface{}{
				"url":   url,
				"error": err.Error(),
			})
			continue
		}
		if len(refs) > 0 {
			log.InfoWithFields("discovered profile videos", map[string]interface{}{
				"url":   url,
				"count": len(refs),
			})
			ui.PrintInfo("Discovered", fmt.Sprintf("%d video(s)", len(refs)))
			return len(refs)
		}
	}

	log.Debug("discovery yielded no results")
	return 0
}

// retrieve downloads the profile's media view into the working directory.
// Failures are non-fatal: per-item errors are skipped by the engine, and a
// structural failure simply leaves the working directory empty for the
// assembly stage to judge.
func (g *Grabber) retrieve(ctx context.Context, handle, destDir, cookieFile string, log logger.Logger) {
	opts := extractor.Options{
		Limit:              g.config.Download.Limit,
		CookieFile:         cookieFile,
		Format:             g.config.QualitySelector(),
		OutputTemplate:     g.config.Extractor.OutputTemplate,
		MergeFormat:        g.config.Extractor.MergeFormat,
		TolerateItemErrors: true,
	}

	url := profile.MediaURL(handle)
	ui.PrintInfo("Downloading from", url)

	if err := g.extractor.Download(ctx, url, destDir, opts); err != nil {
		log.WarnWithFields("retrieval finished with errors", map[string]interface{}{
			"url":   url,
			"error": err.Error(),
		})
	}
}

// cookieFile returns the configured authentication material path, or ""
// when the file does not exist. A missing cookie file is a warning, not a
// hard error; the run continues unauthenticated.
func (g *Grabber) cookieFile(log logger.Logger) string {
	path := g.config.Download.CookieFile
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		log.WarnWithFields("cookie file not found, continuing unauthenticated", map[string]interface{}{
			"path": path,
		})
		ui.PrintWarning("Cookie file not found", path)
		return ""
	}
	return path
}

// newRunID returns a time-ordered unique run identifier.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
