package ytdlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMetadata(t *testing.T) {
	t.Run("first complete line wins", func(t *testing.T) {
		out := "garbage\nSong Title\tSome Channel\t212.5\thttps://cdn.example/audio\nOther\tX\t1\thttps://b\n"
		meta, err := parseMetadata(out)
		require.NoError(t, err)
		assert.Equal(t, "Song Title", meta.Title)
		assert.Equal(t, "Some Channel", meta.Uploader)
		assert.Equal(t, 212500*time.Millisecond, meta.Duration)
		assert.Equal(t, "https://cdn.example/audio", meta.URL)
	})

	t.Run("NA fields are blanked", func(t *testing.T) {
		meta, err := parseMetadata("NA\tNA\tNA\thttps://x")
		require.NoError(t, err)
		assert.Empty(t, meta.Title)
		assert.Empty(t, meta.Uploader)
		assert.Zero(t, meta.Duration)
	})

	t.Run("empty output", func(t *testing.T) {
		_, err := parseMetadata("  \n")
		assert.ErrorIs(t, err, ErrNoMetadata)
	})
}
