package music

import (
	"context"
	"fmt"

	"tastybot/internal/command"
	"tastybot/pkg/cmd"
)

type AlbumCommand struct {
	Deps *Deps
}

func (c *AlbumCommand) Name() string { return "album" }
func (c *AlbumCommand) Description() string {
	return "Listen to a tasty album, a random one when no name is given"
}
func (c *AlbumCommand) Aliases() []string { return []string{} }
func (c *AlbumCommand) Usage() string     { return "[name]" }
func (c *AlbumCommand) Category() string  { return category }

func (c *AlbumCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, err := command.Message(inv)
	if err != nil {
		return err
	}

	var (
		paths    []string
		announce string
	)
	if name := inv.ArgString(); name != "" {
		var found bool
		paths, found = c.Deps.Catalog.AlbumPaths(name)
		if !found {
			return mc.Reply.Reply(fmt.Sprintf("Album %s not found.", name))
		}
	} else {
		name, paths = c.Deps.Catalog.RandomAlbum()
		if name == "" {
			return mc.Reply.Reply(msgEmptyPlaylist)
		}
		announce = fmt.Sprintf("Playing %s.", name)
	}

	return c.Deps.replaceQueue(ctx, mc, paths, announce)
}
