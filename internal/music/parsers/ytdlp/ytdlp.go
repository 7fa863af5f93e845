package ytdlp

import (
	"context"
	"io"

	"tastybot/internal/music/parsers"
)

type YTDLPStreamer struct {
	Proxy string
}

func (s *YTDLPStreamer) GetLinkStream(ctx context.Context, track *parsers.TrackParse) (io.ReadCloser, func(), error) {
	return s.ytdlpLink(ctx, track)
}
func (s *YTDLPStreamer) GetPipeStream(ctx context.Context, track *parsers.TrackParse) (io.ReadCloser, func(), error) {
	return s.ytdlpPipe(ctx, track)
}
func (s *YTDLPStreamer) SupportsPipe() bool {
	return true
}
