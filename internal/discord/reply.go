package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

const maxMessageLength = 2000

type channelReplier struct {
	s         *discordgo.Session
	channelID string
}

func (r *channelReplier) Reply(content string) error {
	for _, chunk := range splitMessage(content, maxMessageLength) {
		if _, err := r.s.ChannelMessageSend(r.channelID, chunk); err != nil {
			return err
		}
	}
	return nil
}

// splitMessage cuts content on line breaks into chunks of at most limit
// bytes. A code block cut in half is closed and reopened.
func splitMessage(content string, limit int) []string {
	if len(content) <= limit {
		return []string{content}
	}

	const fence = "```"
	budget := limit - len(fence)*2 - 2

	var (
		chunks []string
		cur    strings.Builder
		inCode bool
		prefix int
	)
	flush := func() {
		if cur.Len() <= prefix {
			return
		}
		text := cur.String()
		if inCode {
			text = strings.TrimRight(text, "\n") + "\n" + fence
		}
		chunks = append(chunks, strings.TrimRight(text, "\n"))
		cur.Reset()
		prefix = 0
		if inCode {
			cur.WriteString(fence + "\n")
			prefix = cur.Len()
		}
	}

	for _, line := range strings.SplitAfter(content, "\n") {
		for len(line) > budget {
			flush()
			cur.WriteString(line[:budget])
			line = line[budget:]
			flush()
		}
		if cur.Len()+len(line) > budget {
			flush()
		}
		cur.WriteString(line)
		if strings.Count(line, fence)%2 == 1 {
			inCode = !inCode
		}
	}
	flush()
	return chunks
}
