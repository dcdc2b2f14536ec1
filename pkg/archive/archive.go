// Package archive assembles retrieved media files into a single
// deflate-compressed ZIP with a deterministic entry order.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"xvidzip/pkg/logger"
)

// allowedExtensions is the fixed allow-list of media container formats
// eligible for archiving. Matching is case-insensitive.
var allowedExtensions = map[string]bool{
	".mp4":  true,
	".webm": true,
	".mkv":  true,
	".mov":  true,
	".avi":  true,
}

// Entry is one file written into the archive.
type Entry struct {
	// Name is the archive entry name, <username>_<original filename>.
	Name string
	// Size is the uncompressed size in bytes.
	Size int64
}

// Summary reports what an assembly pass produced. Files == 0 means the
// "nothing downloaded" outcome: no archive was created or overwritten.
type Summary struct {
	Path    string
	Files   int
	Entries []Entry
	// Bytes is the final archive size on disk.
	Bytes int64
}

// ListMediaFiles returns the qualifying media filenames directly inside
// dir (non-recursive), sorted lexicographically. The sort is explicit so
// archive contents are reproducible across platforms and filesystems.
func ListMediaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read working directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if allowedExtensions[ext] {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// Build scans srcDir for qualifying media files and writes them into a new
// ZIP archive at destPath, each entry named <username>_<filename>, in
// lexicographic filename order. The archive is only opened for writing
// once at least one qualifying file is confirmed to exist; with zero
// files Build reports Summary{Files: 0} and leaves destPath untouched.
func Build(srcDir, username, destPath string) (*Summary, error) {
	log := logger.GetLogger()

	names, err := ListMediaFiles(srcDir)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Path: destPath}
	if len(names) == 0 {
		return summary, nil
	}

	out, err := os.Create(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, name := range names {
		size, err := addEntry(zw, filepath.Join(srcDir, name), username+"_"+name)
		if err != nil {
			zw.Close()
			return nil, err
		}
		summary.Entries = append(summary.Entries, Entry{Name: username + "_" + name, Size: size})
		log.DebugWithFields("added archive entry", map[string]interface{}{
			"entry": username + "_" + name,
			"bytes": size,
		})
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	info, err := os.Stat(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat archive: %w", err)
	}

	summary.Files = len(names)
	summary.Bytes = info.Size()
	return summary, nil
}

// addEntry writes one file into the archive under entryName using the
// writer's default deflate compression.
func addEntry(zw *zip.Writer, srcPath, entryName string) (int64, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open media file: %w", err)
	}
	defer src.Close()

	w, err := zw.Create(entryName)
	if err != nil {
		return 0, fmt.Errorf("failed to create archive entry: %w", err)
	}

	n, err := io.Copy(w, src)
	if err != nil {
		return 0, fmt.Errorf("failed to write archive entry: %w", err)
	}
	return n, nil
}
