package workdir

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndRemove(t *testing.T) {
	wd, err := Create("nasa", "0190a000-0000-7000-8000-000000000000")
	require.NoError(t, err)

	info, err := os.Stat(wd.Path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Contains(t, filepath.Base(wd.Path), "xvidzip_nasa_0190a000_")

	wd.Remove()
	_, err = os.Stat(wd.Path)
	assert.True(t, os.IsNotExist(err) || wd.Path == "")
}

func TestCreateUniquePerRun(t *testing.T) {
	a, err := Create("nasa", "run-a")
	require.NoError(t, err)
	defer a.Remove()

	b, err := Create("nasa", "run-a")
	require.NoError(t, err)
	defer b.Remove()

	assert.NotEqual(t, a.Path, b.Path)
}

func TestRemoveIsIdempotent(t *testing.T) {
	wd, err := Create("nasa", "run-b")
	require.NoError(t, err)

	path := wd.Path
	wd.Remove()
	wd.Remove() // second removal must not panic or recreate anything

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestRemoveNilSafe(t *testing.T) {
	var wd *Dir
	wd.Remove()
}

func TestShortRunID(t *testing.T) {
	wd, err := Create("u", "ab")
	require.NoError(t, err)
	defer wd.Remove()

	assert.True(t, strings.HasPrefix(filepath.Base(wd.Path), "xvidzip_u_ab_"))
}
