package music

import (
	"context"

	"tastybot/internal/command"
	"tastybot/pkg/cmd"
)

type StopCommand struct {
	Deps *Deps
}

func (c *StopCommand) Name() string        { return "stop" }
func (c *StopCommand) Description() string { return "Stop the music and leave the voice channel" }
func (c *StopCommand) Aliases() []string   { return []string{} }
func (c *StopCommand) Category() string    { return category }

func (c *StopCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, err := command.Message(inv)
	if err != nil {
		return err
	}
	return controlReply(mc, c.Deps.Player.Stop(mc.GuildID, mc.UserID))
}
