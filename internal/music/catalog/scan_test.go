package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestParseFileName(t *testing.T) {
	cases := []struct {
		in    string
		id    int
		title string
	}{
		{"01 First", 1, "First"},
		{"12 - Twelve", 12, "Twelve"},
		{"Untitled", 0, "Untitled"},
		{"2049", 0, "2049"},
	}
	for _, tc := range cases {
		id, title := ParseFileName(tc.in)
		assert.Equal(t, tc.id, id, tc.in)
		assert.Equal(t, tc.title, title, tc.in)
	}
}

func TestScanAndRoundTrip(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "01 Intro.mp3"))
	touch(t, filepath.Join(root, "cover.jpg"))
	touch(t, filepath.Join(root, "Lights", "02 Second.flac"))
	touch(t, filepath.Join(root, "Lights", "01 - First.WAV"))
	touch(t, filepath.Join(root, "Lights", "notes.txt"))

	songs, err := Scan(root, "Tastycool")
	require.NoError(t, err)
	require.Len(t, songs, 3)

	assert.Equal(t, RootAlbum, songs[0].Album)
	assert.Equal(t, "Intro", songs[0].Title)
	for _, s := range songs {
		assert.Equal(t, "Tastycool", s.Artist)
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, songs))
	assert.True(t, strings.HasPrefix(buf.String(), "artist,album,song_name,song_id,path\n"))

	c, err := Parse(&buf, nil)
	require.NoError(t, err)
	paths, ok := c.AlbumPaths("Lights")
	require.True(t, ok)
	require.Len(t, paths, 2)
	first, _ := c.Info(paths[0])
	assert.Equal(t, "First", first.Title)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"), "x")
	assert.Error(t, err)
}
