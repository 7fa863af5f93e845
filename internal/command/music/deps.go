package music

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tastybot/internal/command"
	"tastybot/internal/music/catalog"
	"tastybot/internal/music/player"
	"tastybot/internal/music/sources"
	"tastybot/internal/storage"
)

const category = "🎵 Music"

const (
	msgNotInVoice     = "You have to be connected to a voice channel!"
	msgNothingPlaying = "I am not playing anything right now."
	msgNotSameChannel = "You're not connected to the same voice channel as me."
	msgJoinFailed     = "Could not join your voice channel."
	msgEmptyPlaylist  = "The playlist is empty."
	msgPlaylistFull   = "The playlist is full, some tracks were not added."
	msgTrackLoading   = "The next track is still loading."
)

// Player is the part of the voice manager the music commands drive.
type Player interface {
	Connect(ctx context.Context, guildID, userID string) (bool, error)
	EmptyQueue(guildID string)
	Enqueue(guildID string, refs ...sources.TrackRef) (int, error)
	IsPlaying(guildID string) bool
	PlayNext(ctx context.Context, guildID string) error
	Stop(guildID, userID string) error
	Skip(guildID, userID string) error
	Snapshot(guildID string) player.Snapshot
	LeaveIfIdle(guildID string) bool
}

type Catalog interface {
	Shuffled() []string
	AlbumPaths(name string) ([]string, bool)
	RandomAlbum() (string, []string)
	Albums() []catalog.Album
	Info(path string) (catalog.Song, bool)
}

// Remote turns user input into a playable link and names it.
type Remote interface {
	Normalize(ctx context.Context, input string) (string, error)
	Title(ctx context.Context, link string) (string, error)
}

type TrackHistory interface {
	FetchTracksHistory(guildID string) ([]storage.TrackHistoryRecord, error)
}

// Deps are shared by every music command.
type Deps struct {
	Player  Player
	Catalog Catalog
	Remote  Remote
	History TrackHistory
}

// connect joins the caller's channel, replying when it cannot.
func (d *Deps) connect(ctx context.Context, mc *command.MessageContext) (bool, error) {
	ok, err := d.Player.Connect(ctx, mc.GuildID, mc.UserID)
	switch {
	case errors.Is(err, player.ErrUserNotInVoice):
		return false, mc.Reply.Reply(msgNotInVoice)
	case err != nil:
		log.Printf("[ERR] Failed to join voice on guild %s: %v", mc.GuildID, err)
		return false, mc.Reply.Reply(msgJoinFailed)
	}
	return ok, nil
}

// replaceQueue joins the caller, swaps the queue for paths and starts
// playing. announce, when set, is sent once the bot is in voice.
func (d *Deps) replaceQueue(ctx context.Context, mc *command.MessageContext, paths []string, announce string) error {
	if len(paths) == 0 {
		return mc.Reply.Reply(msgEmptyPlaylist)
	}
	if ok, err := d.connect(ctx, mc); !ok {
		return err
	}
	if announce != "" {
		if err := mc.Reply.Reply(announce); err != nil {
			return err
		}
	}

	refs := make([]sources.TrackRef, len(paths))
	for i, p := range paths {
		refs[i] = sources.LocalFile(p)
	}

	d.Player.EmptyQueue(mc.GuildID)
	if err := d.enqueue(mc, refs...); err != nil {
		return err
	}
	return d.playNext(ctx, mc)
}

// enqueue adds refs, telling the user when the playlist overflowed.
func (d *Deps) enqueue(mc *command.MessageContext, refs ...sources.TrackRef) error {
	_, err := d.Player.Enqueue(mc.GuildID, refs...)
	switch {
	case errors.Is(err, player.ErrQueueFull):
		return mc.Reply.Reply(msgPlaylistFull)
	case err != nil:
		d.Player.LeaveIfIdle(mc.GuildID)
		return fmt.Errorf("enqueue: %w", err)
	}
	return nil
}

// playNext starts the queue head. A guild left connected with nothing to
// play is disconnected.
func (d *Deps) playNext(ctx context.Context, mc *command.MessageContext) error {
	err := d.Player.PlayNext(ctx, mc.GuildID)
	if err == nil {
		return nil
	}
	d.Player.LeaveIfIdle(mc.GuildID)
	if errors.Is(err, player.ErrQueueEmpty) {
		return mc.Reply.Reply(msgEmptyPlaylist)
	}
	return fmt.Errorf("play next: %w", err)
}

// describe renders a queued track the way the playlist shows it.
func (d *Deps) describe(ref sources.TrackRef) string {
	if ref.Kind == sources.KindLocalFile && d.Catalog != nil {
		if s, ok := d.Catalog.Info(ref.Location); ok {
			return sources.DisplayInfo{Title: s.Title, Album: s.Album, Artist: s.Artist}.String()
		}
	}
	return ref.Label()
}

// controlReply maps Stop and Skip errors to chat replies.
func controlReply(mc *command.MessageContext, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, player.ErrNothingPlaying):
		return mc.Reply.Reply(msgNothingPlaying)
	case errors.Is(err, player.ErrNotSameChannel):
		return mc.Reply.Reply(msgNotSameChannel)
	case errors.Is(err, player.ErrTrackLoading):
		return mc.Reply.Reply(msgTrackLoading)
	default:
		return err
	}
}
