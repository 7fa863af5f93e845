package music

import (
	"context"
	"fmt"
	"strings"

	"tastybot/internal/command"
	"tastybot/internal/music/player"
	"tastybot/pkg/cmd"
)

type PlaylistCommand struct {
	Deps *Deps
}

func (c *PlaylistCommand) Name() string        { return "playlist" }
func (c *PlaylistCommand) Description() string { return "Print the current playlist" }
func (c *PlaylistCommand) Aliases() []string   { return []string{"queue"} }
func (c *PlaylistCommand) Category() string    { return category }

func (c *PlaylistCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, err := command.Message(inv)
	if err != nil {
		return err
	}

	snap := c.Deps.Player.Snapshot(mc.GuildID)
	if snap.Status != player.StatusPlaying && snap.Status != player.StatusLoading {
		return mc.Reply.Reply(msgEmptyPlaylist)
	}

	var sb strings.Builder
	if snap.Current != nil {
		sb.WriteString(snap.Status.StringEmoji() + " Currently playing:\n")
		sb.WriteString("\t" + snap.Current.String())
	} else {
		sb.WriteString(snap.Status.StringEmoji() + " Loading the next track...")
	}

	if len(snap.Queue) > 0 {
		sb.WriteString("\n\nPlaylist:\n")
	}
	for i, ref := range snap.Queue {
		fmt.Fprintf(&sb, "\t%d. %s\n", i+1, c.Deps.describe(ref))
	}

	return mc.Reply.Reply(strings.TrimRight(sb.String(), "\n"))
}
