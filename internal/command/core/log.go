package core

import (
	"context"
	"fmt"
	"strings"

	"tastybot/internal/command"
	"tastybot/internal/storage"
	"tastybot/pkg/cmd"
)

// CommandLog is the storage view LogCommand reads.
type CommandLog interface {
	FetchCommandHistory(guildID string) ([]storage.CommandHistoryRecord, error)
}

type LogCommand struct {
	Store  CommandLog
	Prefix string
}

func (c *LogCommand) Name() string        { return "commands-log" }
func (c *LogCommand) Description() string { return "Review the recent commands of this server" }
func (c *LogCommand) Aliases() []string   { return []string{"log"} }
func (c *LogCommand) Category() string    { return "🕯️ Information" }

func (c *LogCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, err := command.Message(inv)
	if err != nil {
		return err
	}

	records, err := c.Store.FetchCommandHistory(mc.GuildID)
	if err != nil {
		return fmt.Errorf("fetch command history: %w", err)
	}
	if len(records) == 0 {
		return mc.Reply.Reply("No command history found.")
	}

	var sb strings.Builder
	sb.WriteString("```md\n")
	fmt.Fprintf(&sb, "%-19s\t%-15s\t%s\n", "# Datetime", "# Username", "# Command")
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		line := c.Prefix + r.Command
		if r.Param != "" {
			line += " " + r.Param
		}
		fmt.Fprintf(&sb, "%-19s\t%-15s\t%s\n", r.Datetime.Format("2006-01-02 15:04:05"), r.Username, line)
	}
	sb.WriteString("```")
	return mc.Reply.Reply(sb.String())
}
