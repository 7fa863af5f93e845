package music

import (
	"context"

	"tastybot/internal/command"
	"tastybot/pkg/cmd"
)

type MusicCommand struct {
	Deps *Deps
}

func (c *MusicCommand) Name() string        { return "music" }
func (c *MusicCommand) Description() string { return "Listen to a random playlist of Tastycool songs" }
func (c *MusicCommand) Aliases() []string   { return []string{} }
func (c *MusicCommand) Category() string    { return category }

func (c *MusicCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, err := command.Message(inv)
	if err != nil {
		return err
	}
	return c.Deps.replaceQueue(ctx, mc, c.Deps.Catalog.Shuffled(), "")
}
