package ytdlp

import (
	"context"
	"errors"
	"io"

	"tastybot/internal/music/parsers"
	"tastybot/internal/music/parsers/ffmpeg"
)

func (s *YTDLPStreamer) ytdlpLink(ctx context.Context, track *parsers.TrackParse) (io.ReadCloser, func(), error) {
	meta, err := s.Extract(ctx, track.URL)
	if err != nil {
		return nil, nil, err
	}
	if meta.URL == "" || meta.URL == "NA" {
		return nil, nil, errors.New("empty URL returned from yt-dlp")
	}

	track.Title = meta.Title
	track.Artist = meta.Uploader
	track.Duration = meta.Duration

	return ffmpeg.Link(meta.URL)
}
