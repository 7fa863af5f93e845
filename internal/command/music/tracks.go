package music

import (
	"context"
	"fmt"
	"strings"

	"tastybot/internal/command"
	"tastybot/internal/music/sources"
	"tastybot/pkg/cmd"
)

type TracksCommand struct {
	Deps *Deps
}

func (c *TracksCommand) Name() string        { return "tracks" }
func (c *TracksCommand) Description() string { return "Show the recently played tracks" }
func (c *TracksCommand) Aliases() []string   { return []string{"history"} }
func (c *TracksCommand) Category() string    { return category }

func (c *TracksCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, err := command.Message(inv)
	if err != nil {
		return err
	}

	tracks, err := c.Deps.History.FetchTracksHistory(mc.GuildID)
	if err != nil {
		return fmt.Errorf("fetch tracks history: %w", err)
	}
	if len(tracks) == 0 {
		return mc.Reply.Reply("No tracks played yet.")
	}

	var sb strings.Builder
	sb.WriteString("Recently played:\n")
	for i, t := range tracks {
		info := sources.DisplayInfo{Title: t.Title, Album: t.Album, Artist: t.Artist, URL: t.URL}
		fmt.Fprintf(&sb, "\t%d. %s\n", i+1, info.String())
	}
	return mc.Reply.Reply(strings.TrimRight(sb.String(), "\n"))
}
