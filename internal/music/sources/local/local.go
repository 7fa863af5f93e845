package local

import (
	"context"
	"fmt"
	"os"

	"tastybot/internal/music/catalog"
	"tastybot/internal/music/parsers/ffmpeg"
	"tastybot/internal/music/sources"
)

// Lookup returns catalog metadata for a file path.
type Lookup interface {
	Info(path string) (catalog.Song, bool)
}

// LocalSource decodes files from disk.
type LocalSource struct {
	Volume  float64
	Catalog Lookup
}

func New(volume float64, catalog Lookup) *LocalSource {
	return &LocalSource{Volume: volume, Catalog: catalog}
}

func (l *LocalSource) Resolve(ctx context.Context, ref sources.TrackRef) (*sources.Audio, sources.DisplayInfo, error) {
	if ref.Kind != sources.KindLocalFile {
		return nil, sources.DisplayInfo{}, &sources.ResolutionError{Ref: ref, Err: fmt.Errorf("not a local track")}
	}
	if err := ctx.Err(); err != nil {
		return nil, sources.DisplayInfo{}, &sources.ResolutionError{Ref: ref, Err: err}
	}

	st, err := os.Stat(ref.Location)
	if err != nil {
		return nil, sources.DisplayInfo{}, &sources.ResolutionError{Ref: ref, Err: err}
	}
	if st.IsDir() {
		return nil, sources.DisplayInfo{}, &sources.ResolutionError{Ref: ref, Err: fmt.Errorf("%s is a directory", ref.Location)}
	}

	r, cleanup, err := ffmpeg.Link(ref.Location)
	if err != nil {
		return nil, sources.DisplayInfo{}, &sources.ResolutionError{Ref: ref, Err: err}
	}

	return sources.NewAudio(r, l.Volume, cleanup), l.info(ref), nil
}

func (l *LocalSource) info(ref sources.TrackRef) sources.DisplayInfo {
	if l.Catalog != nil {
		if song, ok := l.Catalog.Info(ref.Location); ok {
			return sources.DisplayInfo{Title: song.Title, Album: song.Album, Artist: song.Artist}
		}
	}
	return sources.DisplayInfo{Title: ref.Label()}
}
