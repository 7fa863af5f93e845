package player

import (
	"context"
	"errors"
	"time"

	"tastybot/internal/music/sources"
)

type PlayerStatus string

const (
	StatusDisconnected PlayerStatus = "Disconnected"
	StatusIdle         PlayerStatus = "Idle"
	StatusLoading      PlayerStatus = "Loading"
	StatusPlaying      PlayerStatus = "Playing"
)

func (status PlayerStatus) StringEmoji() string {
	m := map[PlayerStatus]string{
		StatusDisconnected: "⏏",
		StatusIdle:         "⏹",
		StatusLoading:      "⏳",
		StatusPlaying:      "▶️",
	}
	return m[status]
}

var (
	ErrUserNotInVoice = errors.New("user is not in a voice channel")
	ErrNothingPlaying = errors.New("no track is currently playing")
	ErrNotSameChannel = errors.New("user is not in the bot's voice channel")
	ErrNotConnected   = errors.New("not connected to a voice channel")
	ErrQueueEmpty     = errors.New("no tracks in queue")
	ErrQueueFull      = errors.New("queue is full")
	ErrClosed         = errors.New("player manager is not running")
	ErrTrackLoading   = errors.New("next track is still loading")
)

// Gateway is the chat platform side of voice: where users are and how to join.
type Gateway interface {
	UserChannel(guildID, userID string) (channelID string, ok bool)
	Join(ctx context.Context, guildID, channelID string) (Connection, error)
}

// Connection is a live voice connection of the bot in one guild.
type Connection interface {
	ChannelID() string
	Live() bool
	Disconnect() error
}

// Renderer starts playing audio into a connection.
type Renderer interface {
	Render(conn Connection, audio *sources.Audio) (Playback, error)
}

// Playback is a running render. Done yields its result exactly once.
type Playback interface {
	Stop()
	Done() <-chan error
}

// Events receives playback notifications. Methods run on the manager loop and
// must not call back into the Manager.
type Events interface {
	TrackStarted(guildID string, info sources.DisplayInfo)
	TrackFailed(guildID string, ref sources.TrackRef, err error)
}

type nopEvents struct{}

func (nopEvents) TrackStarted(string, sources.DisplayInfo)    {}
func (nopEvents) TrackFailed(string, sources.TrackRef, error) {}

type Options struct {
	// ConnectTimeout bounds a voice join. Zero means no extra bound.
	ConnectTimeout time.Duration
	// MaxQueueLength caps the pending queue. Zero means unbounded.
	MaxQueueLength int
	Events         Events
}

// Snapshot is a copy of one guild's playback state.
type Snapshot struct {
	Status    PlayerStatus
	ChannelID string
	Current   *sources.DisplayInfo
	Queue     []sources.TrackRef
}
