package ytdlp

import (
	"context"
	"fmt"
	"io"

	"tastybot/internal/music/parsers"
	"tastybot/internal/music/parsers/ffmpeg"
)

func (s *YTDLPStreamer) ytdlpPipe(ctx context.Context, track *parsers.TrackParse) (io.ReadCloser, func(), error) {
	meta, err := s.Extract(ctx, track.URL)
	if err != nil {
		return nil, nil, err
	}
	track.Title = meta.Title
	track.Artist = meta.Uploader
	track.Duration = meta.Duration

	// the download outlives the resolve call, cleanup owns it
	procCtx, cancel := context.WithCancel(context.Background())
	dl := s.command().
		Output("-").
		NoPart().
		BuildCommand(procCtx, track.URL)

	out, err := dl.StdoutPipe()
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("yt-dlp stdout pipe error: %w", err)
	}
	if err := dl.Start(); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("yt-dlp start error: %w", err)
	}

	reader, stopDecoder, err := ffmpeg.Pipe(out)
	if err != nil {
		cancel()
		dl.Wait()
		return nil, nil, err
	}

	cleanup := func() {
		stopDecoder()
		cancel()
		dl.Wait()
	}

	return reader, cleanup, nil
}
