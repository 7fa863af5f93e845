package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"tastybot/internal/command"
	"tastybot/internal/config"
	"tastybot/pkg/cmd"
)

type HelpCommand struct {
	Registry *cmd.Registry
	Prefix   string
}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Show the list of commands" }
func (c *HelpCommand) Aliases() []string   { return []string{"h"} }
func (c *HelpCommand) Category() string    { return "🕯️ Information" }

func (c *HelpCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	mc, err := command.Message(inv)
	if err != nil {
		return err
	}
	return mc.Reply.Reply(c.render())
}

func (c *HelpCommand) render() string {
	groups := map[string][]cmd.Command{}
	for _, entry := range c.Registry.GetAll() {
		groups[entry.Category()] = append(groups[entry.Category()], entry)
	}

	categories := make([]string, 0, len(groups))
	for cat := range groups {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		wi, wj := weight(categories[i]), weight(categories[j])
		if wi != wj {
			return wi < wj
		}
		return categories[i] < categories[j]
	})

	var sb strings.Builder
	sb.WriteString("```\n")
	for _, cat := range categories {
		sb.WriteString(cat + "\n")
		for _, entry := range groups[cat] {
			name := c.Prefix + entry.Name()
			if hint, ok := cmd.Root(entry).(command.UsageHint); ok {
				name += " " + hint.Usage()
			}
			if aliases := entry.Aliases(); len(aliases) > 0 {
				name += " (" + c.Prefix + strings.Join(aliases, ", "+c.Prefix) + ")"
			}
			fmt.Fprintf(&sb, "  %-32s %s\n", name, entry.Description())
		}
		sb.WriteString("\n")
	}
	sb.WriteString("```")
	return sb.String()
}

func weight(category string) int {
	if w, ok := config.CategoryWeights[category]; ok {
		return w
	}
	return 1000
}
