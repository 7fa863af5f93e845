package music

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"tastybot/internal/command"
	"tastybot/pkg/cmd"
)

type TastycoolCommand struct {
	Deps *Deps
}

func (c *TastycoolCommand) Name() string        { return "tastycool" }
func (c *TastycoolCommand) Description() string { return "List the songs that I have in my bag" }
func (c *TastycoolCommand) Aliases() []string   { return []string{} }
func (c *TastycoolCommand) Category() string    { return category }

func (c *TastycoolCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, err := command.Message(inv)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("```\n")
	for _, album := range c.Deps.Catalog.Albums() {
		sb.WriteString(album.Name + ":\n")
		for i, path := range album.Paths {
			title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			if s, ok := c.Deps.Catalog.Info(path); ok {
				title = s.Title
			}
			fmt.Fprintf(&sb, "\t%d. %s\n", i+1, title)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("```")

	return mc.Reply.Reply(sb.String())
}
