package catalog

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `artist,album,song_name,song_id,path
Tastycool,Lights,Third,3,songs/Lights/03 Third.mp3
Tastycool,Lights,First,1,songs/Lights/01 First.mp3
Tastycool,EP,Intro,,songs/01 Intro.wav
Tastycool,Lights,Second,2,songs/Lights/02 Second.mp3
Tastycool,Lights,Second bis,2,songs/Lights/02 - Second bis.mp3
`

func load(t *testing.T) *Catalog {
	t.Helper()
	c, err := Parse(strings.NewReader(sample), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	return c
}

func TestAlbumPathsSortedStable(t *testing.T) {
	c := load(t)

	paths, ok := c.AlbumPaths("Lights")
	require.True(t, ok)
	assert.Equal(t, []string{
		"songs/Lights/01 First.mp3",
		"songs/Lights/02 Second.mp3",
		"songs/Lights/02 - Second bis.mp3",
		"songs/Lights/03 Third.mp3",
	}, paths)
}

func TestAlbumLookupIsExact(t *testing.T) {
	c := load(t)

	_, ok := c.AlbumPaths("lights")
	assert.False(t, ok)
	_, ok = c.AlbumPaths("Nope")
	assert.False(t, ok)
}

func TestEmptySongIDIsZero(t *testing.T) {
	c := load(t)

	s, ok := c.Info("songs/01 Intro.wav")
	require.True(t, ok)
	assert.Equal(t, 0, s.ID)
	assert.Equal(t, "Intro", s.Title)
	assert.Equal(t, "EP", s.Album)
}

func TestAlbumsInFirstAppearanceOrder(t *testing.T) {
	albums := load(t).Albums()
	require.Len(t, albums, 2)
	assert.Equal(t, "Lights", albums[0].Name)
	assert.Equal(t, "EP", albums[1].Name)
	assert.Len(t, albums[0].Paths, 4)
}

func TestShuffledIsPermutation(t *testing.T) {
	c := load(t)

	got := c.Shuffled()
	require.Len(t, got, c.Len())
	all := []string{}
	for _, a := range c.Albums() {
		all = append(all, a.Paths...)
	}
	assert.ElementsMatch(t, all, got)
}

func TestRandomOps(t *testing.T) {
	c := load(t)

	_, ok := c.Info(c.RandomPath())
	assert.True(t, ok)

	name, paths := c.RandomAlbum()
	want, ok := c.AlbumPaths(name)
	require.True(t, ok)
	assert.Equal(t, want, paths)
}

func TestEmptyCatalog(t *testing.T) {
	c, err := Parse(strings.NewReader("artist,album,song_name,song_id,path\n"), nil)
	require.NoError(t, err)

	assert.Equal(t, "", c.RandomPath())
	assert.Empty(t, c.Shuffled())
	name, paths := c.RandomAlbum()
	assert.Equal(t, "", name)
	assert.Nil(t, paths)
	assert.Empty(t, c.Albums())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader("artist,album\nA,B\n"), nil)
	assert.ErrorContains(t, err, "song_name")

	_, err = Parse(strings.NewReader("artist,album,song_name,song_id,path\nA,B,C,x,p\n"), nil)
	assert.ErrorContains(t, err, "bad song_id")
}
