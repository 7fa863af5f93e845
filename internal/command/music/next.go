package music

import (
	"context"

	"tastybot/internal/command"
	"tastybot/pkg/cmd"
)

type NextCommand struct {
	Deps *Deps
}

func (c *NextCommand) Name() string        { return "next" }
func (c *NextCommand) Description() string { return "Skip to the next track" }
func (c *NextCommand) Aliases() []string   { return []string{"skip"} }
func (c *NextCommand) Category() string    { return category }

func (c *NextCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, err := command.Message(inv)
	if err != nil {
		return err
	}
	return controlReply(mc, c.Deps.Player.Skip(mc.GuildID, mc.UserID))
}
