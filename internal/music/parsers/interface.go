package parsers

import (
	"context"
	"io"
)

// Streamer opens a PCM (s16le) stream for a track. Link mode hands a direct
// media URL to ffmpeg, pipe mode feeds ffmpeg through stdin.
type Streamer interface {
	GetLinkStream(ctx context.Context, track *TrackParse) (io.ReadCloser, func(), error)
	GetPipeStream(ctx context.Context, track *TrackParse) (io.ReadCloser, func(), error)
	SupportsPipe() bool
}
