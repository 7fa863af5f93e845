package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanVideoURL(t *testing.T) {
	cases := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123&t=42": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?t=10":                         "https://youtu.be/dQw4w9WgXcQ",
		"https://music.youtube.com/watch?v=dQw4w9WgXcQ&feature=share": "https://music.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/playlist?list=PL123":                 "https://www.youtube.com/playlist?list=PL123",
		"https://example.com/song.mp3":                                "https://example.com/song.mp3",
	}
	for in, want := range cases {
		assert.Equal(t, want, CleanVideoURL(in), in)
	}
}

func TestAvailableParsers(t *testing.T) {
	assert.Equal(t,
		[]string{ParserYtdlpLink, ParserYtdlpPipe, ParserKkdaiLink, ParserKkdaiPipe},
		AvailableParsers("https://youtu.be/dQw4w9WgXcQ"))
	assert.Equal(t,
		[]string{ParserYtdlpLink, ParserYtdlpPipe, ParserFfmpegLink},
		AvailableParsers("https://example.com/stream.mp3"))
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://youtu.be/x"))
	assert.True(t, IsURL("http://example.com"))
	assert.False(t, IsURL("never gonna give you up"))
}

func TestSearchFirstVideoURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tasty cool", r.URL.Query().Get("search_query"))
		fmt.Fprint(w, `{"contents":[{"url":"/watch?v=abcdefghijk","title":"x"}]}`)
	}))
	defer srv.Close()

	s := &Searcher{BaseURL: srv.URL, Client: srv.Client()}
	got, err := s.SearchFirstVideoURL(context.Background(), "tasty cool")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=abcdefghijk", got)
}

func TestSearchNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html>nothing here</html>`)
	}))
	defer srv.Close()

	s := &Searcher{BaseURL: srv.URL, Client: srv.Client()}
	_, err := s.SearchFirstVideoURL(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNoVideoMatch)
}

func TestNormalizeKeepsLinks(t *testing.T) {
	y := New(0.5, "")
	got, err := y.Normalize(context.Background(), "  https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=3 ")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", got)

	got, err = y.Normalize(context.Background(), "https://example.com/a.mp3")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.mp3", got)

	_, err = y.Normalize(context.Background(), "   ")
	assert.Error(t, err)
}
