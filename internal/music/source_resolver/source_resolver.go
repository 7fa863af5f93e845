package source_resolver

import (
	"context"
	"errors"

	"tastybot/internal/music/sources"
)

// Mux resolves a TrackRef with the resolver registered for its kind.
type Mux struct {
	Sources map[sources.Kind]sources.Resolver
}

func New(local, remote sources.Resolver) *Mux {
	return &Mux{
		Sources: map[sources.Kind]sources.Resolver{
			sources.KindLocalFile: local,
			sources.KindRemoteURL: remote,
		},
	}
}

func (m *Mux) Resolve(ctx context.Context, ref sources.TrackRef) (*sources.Audio, sources.DisplayInfo, error) {
	src, ok := m.Sources[ref.Kind]
	if !ok || src == nil {
		return nil, sources.DisplayInfo{}, &sources.ResolutionError{Ref: ref, Err: errors.New("unknown source: " + ref.Kind.String())}
	}
	return src.Resolve(ctx, ref)
}
