package music

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tastybot/internal/command"
	"tastybot/internal/music/player"
	"tastybot/internal/music/sources"
	"tastybot/pkg/cmd"
)

type PlayCommand struct {
	Deps *Deps
}

func (c *PlayCommand) Name() string        { return "play" }
func (c *PlayCommand) Description() string { return "Add a YouTube link or search to the playlist" }
func (c *PlayCommand) Aliases() []string   { return []string{"p"} }
func (c *PlayCommand) Category() string    { return category }
func (c *PlayCommand) Usage() string       { return "<link or search terms>" }

func (c *PlayCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, err := command.Message(inv)
	if err != nil {
		return err
	}

	input := inv.ArgString()
	if input == "" {
		return mc.Reply.Reply(fmt.Sprintf("Usage: %s %s", c.Name(), c.Usage()))
	}

	link, err := c.Deps.Remote.Normalize(ctx, input)
	if err != nil {
		log.Printf("[WARN] Could not find track for %q: %v", input, err)
		return mc.Reply.Reply(fmt.Sprintf("Nothing found for %s.", input))
	}

	title, err := c.Deps.Remote.Title(ctx, link)
	if err != nil {
		log.Printf("[WARN] Could not extract title of %s: %v", link, err)
		return mc.Reply.Reply(fmt.Sprintf("Could not load %s.", link))
	}

	if ok, err := c.Deps.connect(ctx, mc); !ok {
		return err
	}

	if _, err := c.Deps.Player.Enqueue(mc.GuildID, sources.RemoteURL(link, title)); errors.Is(err, player.ErrQueueFull) {
		if !c.Deps.Player.IsPlaying(mc.GuildID) {
			return c.Deps.playNext(ctx, mc)
		}
		return mc.Reply.Reply(msgPlaylistFull)
	} else if err != nil {
		c.Deps.Player.LeaveIfIdle(mc.GuildID)
		return fmt.Errorf("enqueue: %w", err)
	}

	if !c.Deps.Player.IsPlaying(mc.GuildID) {
		return c.Deps.playNext(ctx, mc)
	}
	return mc.Reply.Reply(fmt.Sprintf("Added to playlist: %s", title))
}
