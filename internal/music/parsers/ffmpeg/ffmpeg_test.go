package ffmpeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkArgs(t *testing.T) {
	t.Run("remote link reconnects", func(t *testing.T) {
		args := linkArgs("https://example.com/a.webm")
		assert.Equal(t, []string{"-reconnect", "1", "-reconnect_streamed", "1", "-reconnect_delay_max", "5"}, args[:6])
		assert.Contains(t, args, "https://example.com/a.webm")
	})

	t.Run("local file has no reconnect flags", func(t *testing.T) {
		args := linkArgs("songs/Album/01 Intro.mp3")
		assert.Equal(t, "-i", args[0])
		assert.Equal(t, "songs/Album/01 Intro.mp3", args[1])
		assert.NotContains(t, args, "-reconnect")
	})

	t.Run("pcm output", func(t *testing.T) {
		args := linkArgs("x.mp3")
		assert.Equal(t, "pipe:1", args[len(args)-1])
		assert.Contains(t, args, "s16le")
		assert.Contains(t, args, "48000")
	})
}
