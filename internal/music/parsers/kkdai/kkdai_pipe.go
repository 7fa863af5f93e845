package kkdai

import (
	"context"
	"fmt"
	"io"

	"tastybot/internal/music/parsers"
	"tastybot/internal/music/parsers/ffmpeg"
)

func (s *KKDAIStreamer) kkdaiPipe(ctx context.Context, track *parsers.TrackParse) (io.ReadCloser, func(), error) {
	client, video, format, err := s.fetchVideo(ctx, track)
	if err != nil {
		return nil, nil, fmt.Errorf("[kkdai-pipe] %w", err)
	}

	// the body is read for the whole track, so it must not follow ctx
	stream, _, err := client.GetStreamContext(context.Background(), video, format)
	if err != nil {
		return nil, nil, fmt.Errorf("[kkdai-pipe] get stream error: %w", err)
	}

	reader, stopDecoder, err := ffmpeg.Pipe(stream)
	if err != nil {
		stream.Close()
		return nil, nil, err
	}

	cleanup := func() {
		stream.Close()
		stopDecoder()
	}

	return reader, cleanup, nil
}
