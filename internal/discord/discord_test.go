package discord

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickWelcome(t *testing.T) {
	msg, ok := pickWelcome("Hello!:: Welcome :: ", "::", func(n int) int {
		assert.Equal(t, 2, n)
		return 1
	})
	require.True(t, ok)
	assert.Equal(t, "Welcome", msg)

	_, ok = pickWelcome("", "::", func(int) int { return 0 })
	assert.False(t, ok)
}

func TestWelcomeChannel(t *testing.T) {
	channels := []*discordgo.Channel{
		{ID: "voice", Type: discordgo.ChannelTypeGuildVoice, Position: 0},
		{ID: "random", Type: discordgo.ChannelTypeGuildText, Position: 2},
		{ID: "general", Type: discordgo.ChannelTypeGuildText, Position: 1},
	}

	assert.Equal(t, "sys", welcomeChannel(&discordgo.Guild{SystemChannelID: "sys"}, channels))
	assert.Equal(t, "general", welcomeChannel(&discordgo.Guild{}, channels))
	assert.Equal(t, "", welcomeChannel(&discordgo.Guild{}, channels[:1]))
}

func TestSplitMessageShort(t *testing.T) {
	assert.Equal(t, []string{"hello"}, splitMessage("hello", 2000))
}

func TestSplitMessageKeepsCodeBlocks(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("```\n")
	for i := range 300 {
		fmt.Fprintf(&sb, "\t%d. Some tasty song title\n", i+1)
	}
	sb.WriteString("```")

	chunks := splitMessage(sb.String(), 2000)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 2000)
		assert.True(t, strings.HasPrefix(c, "```"), c[:10])
		assert.True(t, strings.HasSuffix(c, "```"))
		assert.Equal(t, 0, strings.Count(c, "```")%2)
	}
	assert.Contains(t, strings.Join(chunks, "\n"), "300. Some tasty song title")
}

func TestSplitMessageLongLine(t *testing.T) {
	chunks := splitMessage(strings.Repeat("a", 4500), 2000)
	total := 0
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 2000)
		total += len(c)
	}
	assert.Equal(t, 4500, total)
}
