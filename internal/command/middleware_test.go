package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastybot/internal/storage"
	"tastybot/pkg/cmd"
)

type countCommand struct{ ran int }

func (c *countCommand) Name() string        { return "count" }
func (c *countCommand) Aliases() []string   { return nil }
func (c *countCommand) Description() string { return "" }
func (c *countCommand) Category() string    { return "" }
func (c *countCommand) Run(ctx context.Context, inv *cmd.Invocation) error {
	c.ran++
	return nil
}

type memHistory struct{ records []storage.CommandHistoryRecord }

func (m *memHistory) AppendCommandToHistory(guildID string, r storage.CommandHistoryRecord) error {
	m.records = append(m.records, r)
	return nil
}

func noReply(string) error { return nil }

func TestWithGuildOnly(t *testing.T) {
	inner := &countCommand{}
	c := cmd.Apply(inner, WithGuildOnly())

	require.NoError(t, c.Run(context.Background(), &cmd.Invocation{Data: &MessageContext{Reply: ReplyFunc(noReply)}}))
	assert.Equal(t, 0, inner.ran)

	require.NoError(t, c.Run(context.Background(), &cmd.Invocation{Data: &MessageContext{GuildID: "g", Reply: ReplyFunc(noReply)}}))
	assert.Equal(t, 1, inner.ran)
}

func TestWithCommandLogger(t *testing.T) {
	inner := &countCommand{}
	hist := &memHistory{}
	c := cmd.Apply(inner, WithCommandLogger(hist))

	inv := &cmd.Invocation{
		Name: "count",
		Args: []string{"a", "b"},
		Data: &MessageContext{GuildID: "g", UserID: "u", Username: "bob", Reply: ReplyFunc(noReply)},
	}
	require.NoError(t, c.Run(context.Background(), inv))

	require.Len(t, hist.records, 1)
	assert.Equal(t, "count", hist.records[0].Command)
	assert.Equal(t, "a b", hist.records[0].Param)
	assert.Equal(t, "bob", hist.records[0].Username)
}

func TestMessageRequiresContext(t *testing.T) {
	_, err := Message(&cmd.Invocation{})
	assert.ErrorIs(t, err, ErrNoMessageContext)
}
