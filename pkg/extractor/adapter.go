// Package extractor is the call boundary to the external media extraction
// engine (yt-dlp). It translates profile URLs plus a typed option record
// into either enumerated media references or downloaded files on disk.
package extractor

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/lrstanley/go-ytdlp"

	"xvidzip/pkg/errors"
	"xvidzip/pkg/logger"
)

// MediaRef is one enumerated media item on a profile timeline.
type MediaRef struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Adapter wraps the yt-dlp engine behind a typed interface.
type Adapter struct {
	log logger.Logger
}

// NewAdapter creates an extraction adapter.
func NewAdapter() *Adapter {
	return &Adapter{log: logger.GetLogger()}
}

// EnsureInstalled resolves the yt-dlp binary, downloading it when absent.
// A failure here means the extraction capability is entirely unavailable
// and the run cannot proceed.
func (a *Adapter) EnsureInstalled(ctx context.Context) error {
	if _, err := ytdlp.Install(ctx, nil); err != nil {
		return errors.Wrap(errors.ErrorTypeCapability, "extraction engine unavailable", err)
	}
	return nil
}

// Enumerate lists media items reachable on a profile URL without
// downloading anything. A structural failure yields an empty list plus a
// typed error; the caller decides whether zero results is terminal.
func (a *Adapter) Enumerate(ctx context.Context, profileURL string, opts Options) ([]MediaRef, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dl := ytdlp.New().
		SkipDownload().
		FlatPlaylist().
		PrintJSON().
		Quiet().
		NoWarnings()

	if opts.TolerateItemErrors {
		dl = dl.IgnoreErrors()
	}
	if opts.CookieFile != "" {
		dl = dl.Cookies(opts.CookieFile)
	}
	if r := opts.playlistRange(); r != "" {
		dl = dl.PlaylistItems(r)
	}

	a.log.DebugWithFields("enumerating profile media", map[string]interface{}{
		"url":   profileURL,
		"limit": opts.Limit,
	})

	result, err := dl.Run(ctx, profileURL)
	if err != nil {
		return nil, a.classifyRunError("enumeration failed", err)
	}

	return parseFlatEntries(result.Stdout), nil
}

// Download retrieves media bytes for a profile URL into destDir, naming
// each file by the engine's output template. Per-item failures are
// skipped when tolerated; a returned error indicates the batch as a whole
// did not complete cleanly, which the caller treats as "inspect destDir".
func (a *Adapter) Download(ctx context.Context, mediaURL, destDir string, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	dl := ytdlp.New().
		Format(opts.Format).
		Output(filepath.Join(destDir, opts.OutputTemplate)).
		NoWarnings()

	if opts.MergeFormat != "" {
		dl = dl.MergeOutputFormat(opts.MergeFormat)
	}
	if opts.TolerateItemErrors {
		dl = dl.IgnoreErrors()
	}
	if opts.CookieFile != "" {
		dl = dl.Cookies(opts.CookieFile)
	}
	if r := opts.playlistRange(); r != "" {
		dl = dl.PlaylistItems(r)
	}

	a.log.InfoWithFields("retrieving profile media", map[string]interface{}{
		"url":    mediaURL,
		"dest":   destDir,
		"format": opts.Format,
	})

	if _, err := dl.Run(ctx, mediaURL); err != nil {
		return a.classifyRunError("retrieval did not complete cleanly", err)
	}
	return nil
}

// classifyRunError maps engine failures onto the error taxonomy so the
// retry layer can tell transient faults from structural ones.
func (a *Adapter) classifyRunError(message string, err error) error {
	text := strings.ToLower(err.Error())
	switch {
	case strings.Contains(text, "429") || strings.Contains(text, "rate limit"):
		return errors.Wrap(errors.ErrorTypeRateLimit, message, err)
	case strings.Contains(text, "timed out") ||
		strings.Contains(text, "timeout") ||
		strings.Contains(text, "connection"):
		return errors.Wrap(errors.ErrorTypeNetwork, message, err)
	case strings.Contains(text, "404") || strings.Contains(text, "not found"):
		return errors.Wrap(errors.ErrorTypeNotFound, message, err)
	case strings.Contains(text, "login") || strings.Contains(text, "authorization"):
		return errors.Wrap(errors.ErrorTypeAuth, message, err)
	default:
		return errors.Wrap(errors.ErrorTypeExtraction, message, err)
	}
}

// parseFlatEntries decodes the engine's per-entry JSON lines. Lines that
// fail to decode or carry no URL are dropped rather than failing the batch.
func parseFlatEntries(stdout string) []MediaRef {
	var refs []MediaRef
	for _, line := range strings.Split(stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, "{") {
			continue
		}
		var ref MediaRef
		if err := json.Unmarshal([]byte(line), &ref); err != nil {
			continue
		}
		if ref.URL == "" {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}
