package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/bwmarrin/discordgo"
	"layeh.com/gopus"

	"tastybot/internal/music/parsers"
)

// Session is one track being streamed into a voice connection.
type Session struct {
	stop     chan struct{}
	stopOnce sync.Once
	done     chan error
}

// Start streams r into vc on a new goroutine. The result is delivered once on Done.
func Start(vc *discordgo.VoiceConnection, r io.Reader, volume float64) *Session {
	s := &Session{
		stop: make(chan struct{}),
		done: make(chan error, 1),
	}
	go func() {
		s.done <- StreamToDiscord(r, volume, s.stop, vc)
	}()
	return s
}

// Stop ends the stream early. Safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Session) Done() <-chan error {
	return s.done
}

// StreamToDiscord encodes 20ms PCM frames to opus until the reader is drained
// or stop is closed. A clean end of stream returns nil.
func StreamToDiscord(r io.Reader, volume float64, stop <-chan struct{}, vc *discordgo.VoiceConnection) error {
	encoder, err := gopus.NewEncoder(parsers.SampleRate, parsers.Channels, gopus.Audio)
	if err != nil {
		return fmt.Errorf("encoder error: %w", err)
	}

	if err := vc.Speaking(true); err != nil {
		return fmt.Errorf("speaking error: %w", err)
	}
	defer vc.Speaking(false)

	pcmBuf := make([]byte, parsers.FrameSize*parsers.Channels*2)
	intBuf := make([]int16, parsers.FrameSize*parsers.Channels)

	for {
		select {
		case <-stop:
			return nil
		default:
		}

		n, err := io.ReadFull(r, pcmBuf)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			// pad the last partial frame with silence
			clear(pcmBuf[n:])
		} else if err != nil {
			return fmt.Errorf("read error: %w", err)
		}

		DecodeFrame(pcmBuf, volume, intBuf)

		opus, err := encoder.Encode(intBuf, parsers.FrameSize, len(pcmBuf))
		if err != nil {
			return fmt.Errorf("encode error: %w", err)
		}

		select {
		case vc.OpusSend <- opus:
		case <-stop:
			return nil
		}

		if n < len(pcmBuf) {
			return nil
		}
	}
}

// DecodeFrame converts little endian s16 PCM into samples scaled by volume,
// clipping at the int16 range.
func DecodeFrame(pcm []byte, volume float64, out []int16) {
	for i := range out {
		if i*2+1 >= len(pcm) {
			out[i] = 0
			continue
		}
		sample := int16(binary.LittleEndian.Uint16(pcm[i*2 : i*2+2]))
		if volume == 1 {
			out[i] = sample
			continue
		}
		v := float64(sample) * volume
		switch {
		case v > 32767:
			v = 32767
		case v < -32768:
			v = -32768
		}
		out[i] = int16(v)
	}
}
