package kkdai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	youtube "github.com/kkdai/youtube/v2"

	"tastybot/internal/music/parsers"
)

func extractYouTubeID(url string) (string, error) {
	switch {
	case strings.Contains(url, "youtu.be/"):
		parts := strings.Split(url, "youtu.be/")
		if len(parts) != 2 || parts[1] == "" {
			return "", errors.New("invalid YouTube URL format")
		}
		return strings.Split(parts[1], "?")[0], nil

	case strings.Contains(url, "youtube.com/watch?v="):
		parts := strings.Split(url, "v=")
		if len(parts) != 2 || parts[1] == "" {
			return "", errors.New("invalid YouTube URL format")
		}
		return strings.Split(parts[1], "&")[0], nil

	default:
		return "", errors.New("unsupported URL format")
	}
}

// fetchVideo loads the video and picks its first audio format, filling in the
// track metadata on the way.
func (s *KKDAIStreamer) fetchVideo(ctx context.Context, track *parsers.TrackParse) (*youtube.Client, *youtube.Video, *youtube.Format, error) {
	videoID, err := extractYouTubeID(track.URL)
	if err != nil {
		return nil, nil, nil, err
	}

	client := NewClient(s.Proxy)
	video, err := client.GetVideoContext(ctx, videoID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("youtube client error: %w", err)
	}

	track.Title = video.Title
	track.Artist = video.Author
	track.Duration = video.Duration

	formats := video.Formats.WithAudioChannels()
	if len(formats) == 0 {
		return nil, nil, nil, errors.New("no audio formats found for video")
	}
	return client, video, &formats[0], nil
}
