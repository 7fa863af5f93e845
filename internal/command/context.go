package command

import (
	"errors"

	"tastybot/pkg/cmd"
)

// Replier sends a text message back to the channel a command came from.
type Replier interface {
	Reply(content string) error
}

// MessageContext is the Data of every chat command invocation.
type MessageContext struct {
	GuildID   string
	ChannelID string
	UserID    string
	Username  string
	Reply     Replier
}

var ErrNoMessageContext = errors.New("invocation has no message context")

// Message returns the message context carried by inv.
func Message(inv *cmd.Invocation) (*MessageContext, error) {
	mc, ok := inv.Data.(*MessageContext)
	if !ok || mc == nil || mc.Reply == nil {
		return nil, ErrNoMessageContext
	}
	return mc, nil
}

// ReplyFunc adapts a function to Replier.
type ReplyFunc func(content string) error

func (f ReplyFunc) Reply(content string) error { return f(content) }

// UsageHint is implemented by commands that take arguments.
type UsageHint interface {
	Usage() string
}
