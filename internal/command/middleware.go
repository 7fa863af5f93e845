package command

import (
	"context"
	"log"
	"time"

	"tastybot/internal/storage"
	"tastybot/pkg/cmd"
)

// WithGuildOnly drops invocations that do not come from a guild channel.
func WithGuildOnly() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			if mc, err := Message(inv); err != nil || mc.GuildID == "" {
				return nil
			}
			return c.Run(ctx, inv)
		})
	}
}

// HistoryStore records executed commands.
type HistoryStore interface {
	AppendCommandToHistory(guildID string, record storage.CommandHistoryRecord) error
}

// WithCommandLogger logs every run and stores it in the guild history.
func WithCommandLogger(store HistoryStore) cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) error {
			err := c.Run(ctx, inv)

			mc, mErr := Message(inv)
			if mErr != nil {
				return err
			}
			log.Printf("[INFO] Command %s %q by %s in guild %s", c.Name(), inv.ArgString(), mc.Username, mc.GuildID)
			if store != nil {
				if e := store.AppendCommandToHistory(mc.GuildID, storage.CommandHistoryRecord{
					ChannelID: mc.ChannelID,
					UserID:    mc.UserID,
					Username:  mc.Username,
					Command:   c.Name(),
					Param:     inv.ArgString(),
					Datetime:  time.Now(),
				}); e != nil {
					log.Printf("[WARN] Failed to log command %s: %v", c.Name(), e)
				}
			}
			return err
		})
	}
}
