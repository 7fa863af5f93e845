package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/bwmarrin/discordgo"

	"tastybot/internal/music/player"
	"tastybot/internal/music/sources"
	"tastybot/internal/music/stream"
)

// Voice is the discordgo side of the player: it finds users in voice
// channels, joins channels and streams audio into them.
type Voice struct {
	dg *discordgo.Session
}

func NewVoice(dg *discordgo.Session) *Voice {
	return &Voice{dg: dg}
}

// UserChannel returns the voice channel the user sits in, from the state cache.
func (v *Voice) UserChannel(guildID, userID string) (string, bool) {
	guild, err := v.dg.State.Guild(guildID)
	if err != nil {
		log.Printf("[WARN] Error retrieving guild %s: %v", guildID, err)
		return "", false
	}

	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID && vs.ChannelID != "" {
			return vs.ChannelID, true
		}
	}
	return "", false
}

type joinResult struct {
	vc  *discordgo.VoiceConnection
	err error
}

// Join connects to a voice channel. discordgo does not take a context, so a
// join outliving ctx is disconnected as soon as it completes.
func (v *Voice) Join(ctx context.Context, guildID, channelID string) (player.Connection, error) {
	done := make(chan joinResult, 1)
	go func() {
		vc, err := v.dg.ChannelVoiceJoin(guildID, channelID, false, true)
		done <- joinResult{vc: vc, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			if r.vc != nil {
				r.vc.Disconnect()
			}
			return nil, fmt.Errorf("failed to join voice channel: %w", r.err)
		}
		return &voiceConn{vc: r.vc, channelID: channelID}, nil
	case <-ctx.Done():
		go func() {
			if r := <-done; r.vc != nil {
				r.vc.Disconnect()
			}
		}()
		return nil, ctx.Err()
	}
}

// Render streams audio into the connection until it ends or is stopped.
func (v *Voice) Render(conn player.Connection, audio *sources.Audio) (player.Playback, error) {
	c, ok := conn.(*voiceConn)
	if !ok {
		return nil, errors.New("connection was not opened by this gateway")
	}
	return stream.Start(c.vc, audio, audio.Volume), nil
}

type voiceConn struct {
	vc        *discordgo.VoiceConnection
	channelID string

	mu     sync.Mutex
	closed bool
}

func (c *voiceConn) ChannelID() string {
	return c.channelID
}

func (c *voiceConn) Live() bool {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return false
	}

	c.vc.RLock()
	defer c.vc.RUnlock()
	return c.vc.Ready
}

func (c *voiceConn) Disconnect() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	return c.vc.Disconnect()
}
