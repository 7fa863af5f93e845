package youtube

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"tastybot/internal/music/parsers"
	"tastybot/internal/music/parsers/ffmpeg"
	"tastybot/internal/music/parsers/kkdai"
	"tastybot/internal/music/parsers/ytdlp"
	"tastybot/internal/music/sources"
)

const (
	ParserYtdlpLink  = "ytdlp-link"
	ParserYtdlpPipe  = "ytdlp-pipe"
	ParserKkdaiLink  = "kkdai-link"
	ParserKkdaiPipe  = "kkdai-pipe"
	ParserFfmpegLink = "ffmpeg-link"
)

// YouTubeSource resolves remote links. yt-dlp goes first, kkdai/youtube is
// the fallback for YouTube links and plain ffmpeg for anything else.
type YouTubeSource struct {
	Volume float64

	ytdlp     *ytdlp.YTDLPStreamer
	streamers map[string]parsers.Streamer
	searcher  *Searcher
}

func New(volume float64, proxy string) *YouTubeSource {
	yt := &ytdlp.YTDLPStreamer{Proxy: proxy}
	kk := &kkdai.KKDAIStreamer{Proxy: proxy}
	return &YouTubeSource{
		Volume: volume,
		ytdlp:  yt,
		streamers: map[string]parsers.Streamer{
			ParserYtdlpLink:  yt,
			ParserYtdlpPipe:  yt,
			ParserKkdaiLink:  kk,
			ParserKkdaiPipe:  kk,
			ParserFfmpegLink: &ffmpeg.FFMPEGStreamer{},
		},
		searcher: NewSearcher(),
	}
}

// AvailableParsers returns the parsers tried for input, in order.
func AvailableParsers(input string) []string {
	if isYouTubeURL(input) {
		return []string{ParserYtdlpLink, ParserYtdlpPipe, ParserKkdaiLink, ParserKkdaiPipe}
	}
	return []string{ParserYtdlpLink, ParserYtdlpPipe, ParserFfmpegLink}
}

// Normalize turns user input into a link: YouTube links are cleaned and
// free-text queries are searched.
func (y *YouTubeSource) Normalize(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", errors.New("empty input")
	}
	if isYouTubeVideoURL(input) {
		return CleanVideoURL(input), nil
	}
	if IsURL(input) {
		return input, nil
	}
	videoURL, err := y.searcher.SearchFirstVideoURL(ctx, input)
	if err != nil {
		return "", fmt.Errorf("could not find YouTube video for query: %w", err)
	}
	return videoURL, nil
}

// Title extracts only the display title of a link.
func (y *YouTubeSource) Title(ctx context.Context, link string) (string, error) {
	meta, err := y.ytdlp.Extract(ctx, link)
	if err != nil {
		return "", err
	}
	if meta.Title == "" {
		return link, nil
	}
	return meta.Title, nil
}

func (y *YouTubeSource) Resolve(ctx context.Context, ref sources.TrackRef) (*sources.Audio, sources.DisplayInfo, error) {
	if ref.Kind != sources.KindRemoteURL {
		return nil, sources.DisplayInfo{}, &sources.ResolutionError{Ref: ref, Err: errors.New("not a remote track")}
	}

	var errs []error
	for _, parser := range AvailableParsers(ref.Location) {
		track := &parsers.TrackParse{URL: ref.Location, Title: ref.Title, Parser: parser}
		r, cleanup, err := y.open(ctx, track)
		if err == nil {
			info := sources.DisplayInfo{Title: track.Title, URL: ref.Location}
			if info.Title == "" {
				info.Title = ref.Label()
			}
			return sources.NewAudio(r, y.Volume, cleanup), info, nil
		}
		if ctx.Err() != nil {
			return nil, sources.DisplayInfo{}, &sources.ResolutionError{Ref: ref, Err: ctx.Err()}
		}
		errs = append(errs, fmt.Errorf("parser %s failed: %w", parser, err))
		log.Printf("[YouTube] Parser %s failed for %s: %v, trying next parser...", parser, ref.Location, err)
	}

	return nil, sources.DisplayInfo{}, &sources.ResolutionError{Ref: ref, Err: errors.Join(errs...)}
}

func (y *YouTubeSource) open(ctx context.Context, track *parsers.TrackParse) (_ io.ReadCloser, _ func(), err error) {
	streamer, ok := y.streamers[track.Parser]
	if !ok {
		return nil, nil, fmt.Errorf("streamer not found for parser: %v", track.Parser)
	}
	if strings.HasSuffix(track.Parser, "-pipe") && streamer.SupportsPipe() {
		return streamer.GetPipeStream(ctx, track)
	}
	return streamer.GetLinkStream(ctx, track)
}
