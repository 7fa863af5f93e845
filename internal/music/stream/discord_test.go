package stream

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pcm(samples ...int16) []byte {
	b := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}
	return b
}

func TestDecodeFrameVolume(t *testing.T) {
	out := make([]int16, 4)
	DecodeFrame(pcm(1000, -1000, 32767, -32768), 0.5, out)
	assert.Equal(t, []int16{500, -500, 16383, -16384}, out)
}

func TestDecodeFrameUnityGain(t *testing.T) {
	out := make([]int16, 3)
	DecodeFrame(pcm(1, -2, 3), 1, out)
	assert.Equal(t, []int16{1, -2, 3}, out)
}

func TestDecodeFrameClips(t *testing.T) {
	out := make([]int16, 2)
	DecodeFrame(pcm(30000, -30000), 2, out)
	assert.Equal(t, []int16{32767, -32768}, out)
}

func TestDecodeFrameShortInput(t *testing.T) {
	out := []int16{9, 9, 9}
	DecodeFrame(pcm(7), 1, out)
	assert.Equal(t, []int16{7, 0, 0}, out)
}

func TestSessionStopIsIdempotent(t *testing.T) {
	s := &Session{stop: make(chan struct{}), done: make(chan error, 1)}
	s.Stop()
	s.Stop()
	select {
	case <-s.stop:
	default:
		t.Fatal("stop channel not closed")
	}
}
