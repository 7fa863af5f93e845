package kkdai

import (
	"context"
	"fmt"
	"io"

	"tastybot/internal/music/parsers"
	"tastybot/internal/music/parsers/ffmpeg"
)

func (s *KKDAIStreamer) kkdaiLink(ctx context.Context, track *parsers.TrackParse) (io.ReadCloser, func(), error) {
	client, video, format, err := s.fetchVideo(ctx, track)
	if err != nil {
		return nil, nil, fmt.Errorf("[kkdai-link] %w", err)
	}

	link, err := client.GetStreamURLContext(ctx, video, format)
	if err != nil {
		return nil, nil, fmt.Errorf("[kkdai-link] get stream URL error: %w", err)
	}

	return ffmpeg.Link(link)
}
