package sources

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
)

type Kind int

const (
	KindLocalFile Kind = iota
	KindRemoteURL
)

func (k Kind) String() string {
	switch k {
	case KindLocalFile:
		return "local"
	case KindRemoteURL:
		return "remote"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// TrackRef is a queued track that has not been resolved yet.
type TrackRef struct {
	Kind     Kind
	Location string // file path or URL
	Title    string // optional display hint captured at enqueue time
}

func LocalFile(path string) TrackRef {
	return TrackRef{Kind: KindLocalFile, Location: path}
}

func RemoteURL(url, title string) TrackRef {
	return TrackRef{Kind: KindRemoteURL, Location: url, Title: title}
}

// Label is the best human readable name available without resolving the track.
func (r TrackRef) Label() string {
	if r.Title != "" {
		return r.Title
	}
	if r.Kind == KindLocalFile {
		return strings.TrimSuffix(filepath.Base(r.Location), filepath.Ext(r.Location))
	}
	return r.Location
}

// DisplayInfo describes the track being rendered.
type DisplayInfo struct {
	Title  string
	Album  string
	Artist string
	URL    string
}

func (d DisplayInfo) String() string {
	if d.Album == "" && d.Artist == "" {
		if d.Title == "" {
			return d.URL
		}
		return d.Title
	}
	return fmt.Sprintf("%s - %s - %s", d.Title, d.Album, d.Artist)
}

// Audio is a decoded PCM stream (s16le, 48kHz, stereo) ready to be rendered.
type Audio struct {
	io.ReadCloser
	Volume float64

	cleanupOnce sync.Once
	cleanup     func()
}

func NewAudio(r io.ReadCloser, volume float64, cleanup func()) *Audio {
	return &Audio{ReadCloser: r, Volume: volume, cleanup: cleanup}
}

// Cleanup closes the stream and releases the decoder. Safe to call more than once.
func (a *Audio) Cleanup() {
	a.cleanupOnce.Do(func() {
		if a.ReadCloser != nil {
			a.ReadCloser.Close()
		}
		if a.cleanup != nil {
			a.cleanup()
		}
	})
}

// Resolver turns a TrackRef into playable audio.
type Resolver interface {
	Resolve(ctx context.Context, ref TrackRef) (*Audio, DisplayInfo, error)
}

// ResolutionError reports a track that could not be materialised.
type ResolutionError struct {
	Ref TrackRef
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve %s track %q: %v", e.Ref.Kind, e.Ref.Location, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }
