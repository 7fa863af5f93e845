// Package cmd provides a transport-agnostic command core: a command is something
// with a name, aliases, a description and Run(ctx, invocation). How commands are
// parsed from chat and dispatched is defined by the adapter that owns the registry.
package cmd

import (
	"context"
	"strings"
)

// Invocation carries the input of one command run. Adapters set Data to
// their own context (the message, its sender and a way to reply).
type Invocation struct {
	Name string
	Args []string
	Data any
}

// ArgString joins the arguments back into the text the user typed.
func (inv *Invocation) ArgString() string {
	return strings.Join(inv.Args, " ")
}

// Command is the universal contract: identity plus execution.
type Command interface {
	Name() string
	Aliases() []string
	Description() string
	Category() string
	Run(ctx context.Context, inv *Invocation) error
}

// Parse splits a chat message into an invocation when it starts with prefix.
func Parse(prefix, content string) (*Invocation, bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return nil, false
	}
	return &Invocation{Name: strings.ToLower(fields[0]), Args: fields[1:]}, true
}
