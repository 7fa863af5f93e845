package music

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastybot/internal/music/player"
	"tastybot/internal/music/sources"
)

type voiceConn struct {
	channelID string
	left      bool
}

func (c *voiceConn) ChannelID() string { return c.channelID }
func (c *voiceConn) Live() bool        { return !c.left }
func (c *voiceConn) Disconnect() error {
	c.left = true
	return nil
}

type voiceGateway struct {
	joins int
}

func (g *voiceGateway) UserChannel(guildID, userID string) (string, bool) {
	return "vc", true
}

func (g *voiceGateway) Join(ctx context.Context, guildID, channelID string) (player.Connection, error) {
	g.joins++
	return &voiceConn{channelID: channelID}, nil
}

type silentRenderer struct{}

func (silentRenderer) Render(conn player.Connection, audio *sources.Audio) (player.Playback, error) {
	return nil, errors.New("no audio in tests")
}

type noResolver struct{}

func (noResolver) Resolve(ctx context.Context, ref sources.TrackRef) (*sources.Audio, sources.DisplayInfo, error) {
	return nil, sources.DisplayInfo{}, errors.New("no tracks in tests")
}

func newManagerFixture(t *testing.T) (*fixture, *player.Manager, *voiceGateway) {
	t.Helper()
	gateway := &voiceGateway{}
	m := player.New(gateway, noResolver{}, silentRenderer{}, player.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- m.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-errCh
	})

	f := newFixture()
	f.deps.Player = m
	return f, m, gateway
}

func TestInvalidInputKeepsBotOutOfVoice(t *testing.T) {
	f, m, gateway := newManagerFixture(t)

	f.run(t, &AlbumCommand{Deps: f.deps}, "Nope")
	f.remote.searchErr = errors.New("no video")
	f.run(t, &PlayCommand{Deps: f.deps}, "nothing")

	assert.Equal(t, []string{"Album Nope not found.", "Nothing found for nothing."}, f.replies.got)
	assert.Zero(t, gateway.joins)
	assert.Equal(t, player.StatusDisconnected, m.Snapshot("g").Status)
}

func TestJoinedGuildWithNothingToPlayLeaves(t *testing.T) {
	f, m, gateway := newManagerFixture(t)

	_, err := m.Connect(context.Background(), "g", "u")
	require.NoError(t, err)
	require.Equal(t, player.StatusIdle, m.Snapshot("g").Status)

	require.NoError(t, f.deps.playNext(context.Background(), mcFor(f)))

	assert.Equal(t, []string{msgEmptyPlaylist}, f.replies.got)
	assert.Equal(t, 1, gateway.joins)
	assert.Equal(t, player.StatusDisconnected, m.Snapshot("g").Status)
}
