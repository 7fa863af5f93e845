package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"tastybot/pkg/retrylimit"
)

const metadataTemplate = "%(title)s\t%(uploader)s\t%(duration)s\t%(url)s"

// Metadata is what yt-dlp reports for the first entry of a link.
type Metadata struct {
	Title    string
	Uploader string
	Duration time.Duration
	URL      string
}

var ErrNoMetadata = errors.New("yt-dlp returned no metadata")

// extractLimiter paces yt-dlp spawns across all guilds.
var extractLimiter = retrylimit.NewAdaptiveLimiter(2, 1, 5, 1, 0.5)

func (s *YTDLPStreamer) command() *ytdlp.Command {
	cmd := ytdlp.New().
		Format("bestaudio/best").
		NoPlaylist().
		PlaylistItems("1").
		NoWarnings().
		IgnoreConfig()

	if s.Proxy != "" {
		cmd.Proxy(s.Proxy)
	}
	return cmd
}

// Extract runs yt-dlp without downloading and returns the track metadata,
// retrying transient failures.
func (s *YTDLPStreamer) Extract(ctx context.Context, url string) (*Metadata, error) {
	var meta *Metadata
	err := retrylimit.WithRetryMax(ctx, func() error {
		res, err := s.command().
			Print(metadataTemplate).
			Run(ctx, "--skip-download", url)
		if err != nil {
			if res != nil && strings.Contains(strings.ToLower(res.Stderr), "unsupported url") {
				return &retrylimit.FatalError{Err: err}
			}
			return err
		}
		m, err := parseMetadata(res.Stdout)
		if err != nil {
			return &retrylimit.FatalError{Err: err}
		}
		meta = m
		return nil
	}, extractLimiter, 3)
	if err != nil {
		return nil, fmt.Errorf("yt-dlp metadata error: %w", err)
	}
	return meta, nil
}

func parseMetadata(stdout string) (*Metadata, error) {
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		parts := strings.Split(line, "\t")
		if len(parts) < 4 {
			continue
		}
		meta := &Metadata{
			Title:    strings.TrimSpace(parts[0]),
			Uploader: strings.TrimSpace(parts[1]),
			URL:      strings.TrimSpace(parts[3]),
		}
		if secs, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err == nil {
			meta.Duration = time.Duration(secs * float64(time.Second))
		}
		if meta.Title == "NA" {
			meta.Title = ""
		}
		if meta.Uploader == "NA" {
			meta.Uploader = ""
		}
		return meta, nil
	}
	return nil, ErrNoMetadata
}
