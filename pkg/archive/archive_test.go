package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func entryNames(t *testing.T, path string) []string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestListMediaFilesFiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.mp4", "b")
	writeFile(t, dir, "a.webm", "a")
	writeFile(t, dir, "c.mkv", "c")
	writeFile(t, dir, "notes.txt", "skip")
	writeFile(t, dir, "clip.mp4.part", "skip")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.mp4"), 0755))

	names, err := ListMediaFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.webm", "b.mp4", "c.mkv"}, names)
}

func TestListMediaFilesCaseInsensitiveExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "UPPER.MP4", "x")
	writeFile(t, dir, "Mixed.WebM", "x")
	writeFile(t, dir, "plain.mov", "x")

	names, err := ListMediaFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mixed.WebM", "UPPER.MP4", "plain.mov"}, names)
}

func TestBuildDeterministicEntryOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.mp4", "video b")
	writeFile(t, dir, "a.webm", "video a")
	writeFile(t, dir, "c.mkv", "video c")

	dest := filepath.Join(t.TempDir(), "out.zip")
	summary, err := Build(dir, "nasa", dest)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Files)
	assert.Equal(t, dest, summary.Path)
	assert.Greater(t, summary.Bytes, int64(0))

	assert.Equal(t, []string{"nasa_a.webm", "nasa_b.mp4", "nasa_c.mkv"}, entryNames(t, dest))
}

func TestBuildEmptyWorkingAreaLeavesDestinationUntouched(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "no media here")

	dest := filepath.Join(t.TempDir(), "out.zip")
	summary, err := Build(dir, "nasa", dest)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.Files)
	assert.Empty(t, summary.Entries)

	_, err = os.Stat(dest)
	assert.True(t, os.IsNotExist(err), "archive must not be created for an empty working area")
}

func TestBuildEmptyDoesNotOverwriteExistingArchive(t *testing.T) {
	dir := t.TempDir()

	dest := filepath.Join(t.TempDir(), "out.zip")
	require.NoError(t, os.WriteFile(dest, []byte("previous archive"), 0644))

	_, err := Build(dir, "nasa", dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "previous archive", string(data))
}

func TestBuildRoundTrip(t *testing.T) {
	dir := t.TempDir()
	contents := map[string]string{
		"one.mp4":   "first video bytes",
		"two.webm":  "second video bytes",
		"three.avi": "third video bytes",
	}
	for name, body := range contents {
		writeFile(t, dir, name, body)
	}

	dest := filepath.Join(t.TempDir(), "out.zip")
	summary, err := Build(dir, "user_1", dest)
	require.NoError(t, err)
	require.Equal(t, len(contents), summary.Files)

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close()

	// Every working-area media file appears exactly once, byte for byte.
	seen := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()

		_, dup := seen[f.Name]
		assert.False(t, dup, "duplicate entry %s", f.Name)
		seen[f.Name] = string(body)
	}

	require.Len(t, seen, len(contents))
	for name, body := range contents {
		assert.Equal(t, body, seen["user_1_"+name])
	}
}

func TestBuildOverwritesExistingArchive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.mp4", "fresh")

	dest := filepath.Join(t.TempDir(), "out.zip")
	require.NoError(t, os.WriteFile(dest, []byte("stale"), 0644))

	summary, err := Build(dir, "nasa", dest)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Files)

	assert.Equal(t, []string{"nasa_a.mp4"}, entryNames(t, dest))
}

func TestBuildUsesDeflateCompression(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.mp4", "compressible payload")

	dest := filepath.Join(t.TempDir(), "out.zip")
	_, err := Build(dir, "nasa", dest)
	require.NoError(t, err)

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close()

	require.Len(t, zr.File, 1)
	assert.Equal(t, zip.Deflate, zr.File[0].Method)
}

func TestBuildMissingSourceDir(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.zip")
	_, err := Build(filepath.Join(t.TempDir(), "does-not-exist"), "nasa", dest)
	assert.Error(t, err)
}
