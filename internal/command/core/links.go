package core

import (
	"context"
	"fmt"
	"strings"

	"tastybot/internal/command"
	"tastybot/internal/config"
	"tastybot/pkg/cmd"
)

type LinksCommand struct {
	Links config.Links
}

func (c *LinksCommand) Name() string        { return "links" }
func (c *LinksCommand) Description() string { return "To get to know more about Tastycool" }
func (c *LinksCommand) Aliases() []string   { return []string{} }
func (c *LinksCommand) Category() string    { return "🕯️ Information" }

func (c *LinksCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, err := command.Message(inv)
	if err != nil {
		return err
	}

	rows := []struct{ label, link, note string }{
		{"Facebook link", c.Links.Facebook, "all tasty news"},
		{"Official website", c.Links.Product, "buy their products"},
		{"Youtube channel", c.Links.YouTube, ""},
		{"Spotify", c.Links.Spotify, ""},
		{"Deezer", c.Links.Deezer, ""},
	}

	var sb strings.Builder
	sb.WriteString("Tasty links :")
	for _, r := range rows {
		if r.link == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n\t- [%s] <%s>", r.label, r.link)
		if r.note != "" {
			sb.WriteString("\t\t-- " + r.note)
		}
	}
	return mc.Reply.Reply(sb.String())
}
