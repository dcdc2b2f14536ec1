package grabber

import (
	"context"

	"xvidzip/pkg/extractor"
)

// MediaExtractor defines the extraction engine operations the orchestrator
// depends on.
type MediaExtractor interface {
	EnsureInstalled(ctx context.Context) error
	Enumerate(ctx context.Context, profileURL string, opts extractor.Options) ([]extractor.MediaRef, error)
	Download(ctx context.Context, mediaURL, destDir string, opts extractor.Options) error
}
