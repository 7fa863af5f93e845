package ffmpeg

import (
	"context"
	"errors"
	"io"

	"tastybot/internal/music/parsers"
)

// FFMPEGStreamer decodes anything ffmpeg can open directly: local files and
// plain media links.
type FFMPEGStreamer struct{}

func (s *FFMPEGStreamer) GetLinkStream(ctx context.Context, track *parsers.TrackParse) (io.ReadCloser, func(), error) {
	return Link(track.URL)
}
func (s *FFMPEGStreamer) GetPipeStream(ctx context.Context, track *parsers.TrackParse) (io.ReadCloser, func(), error) {
	return nil, nil, errors.New("pipe streaming not supported for now")
}
func (s *FFMPEGStreamer) SupportsPipe() bool {
	return false
}
