package discord

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"tastybot/internal/command"
	"tastybot/pkg/cmd"
)

const (
	presence = "some Tastycool songs"
	greeting = "Heyo ! Be ready for some tasty musics !"
)

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("[INFO] %s has connected to Discord!", r.User.Username)
	for _, g := range r.Guilds {
		log.Printf("[INFO] Connected to guild %s", g.ID)
	}

	if err := s.UpdateListeningStatus(presence); err != nil {
		log.Println("[WARN] Failed to update presence:", err)
	}
	log.Printf("[INFO] ✅ Discord bot %v is running.", r.User.Username)
}

// onGuildCreate delivers the full guild after Ready; the greeting goes out once.
func (b *Bot) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	log.Printf("[INFO] Guild available: %s (%s) with %d members", g.Guild.Name, g.Guild.ID, g.Guild.MemberCount)

	target := b.cfg.ReadyGreetingGuild
	if target == "" || (g.Guild.ID != target && g.Guild.Name != target) || g.Guild.SystemChannelID == "" {
		return
	}

	b.mu.Lock()
	already := b.greeted
	b.greeted = true
	b.mu.Unlock()
	if already {
		return
	}

	if _, err := s.ChannelMessageSend(g.Guild.SystemChannelID, greeting); err != nil {
		log.Printf("[WARN] Failed to greet guild %s: %v", g.Guild.ID, err)
	}
}

func (b *Bot) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	b.mu.Lock()
	msg, ok := pickWelcome(b.cfg.WelcomeMessages, b.cfg.WelcomeSplitToken, b.rng.Intn)
	b.mu.Unlock()
	if !ok {
		return
	}

	guild, err := s.State.Guild(m.GuildID)
	if err != nil {
		if guild, err = s.Guild(m.GuildID); err != nil {
			log.Printf("[WARN] Failed to fetch guild %s: %v", m.GuildID, err)
			return
		}
	}
	channels := guild.Channels
	if len(channels) == 0 {
		if channels, err = s.GuildChannels(m.GuildID); err != nil {
			log.Printf("[WARN] Failed to fetch channels of guild %s: %v", m.GuildID, err)
		}
	}

	channelID := welcomeChannel(guild, channels)
	if channelID == "" {
		return
	}
	if _, err := s.ChannelMessageSend(channelID, msg); err != nil {
		log.Printf("[WARN] Failed to welcome %s: %v", m.User.Username, err)
	}
}

// onMessageCreate dispatches prefixed chat commands.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot || (s.State.User != nil && m.Author.ID == s.State.User.ID) {
		return
	}

	inv, ok := cmd.Parse(b.cfg.CommandPrefix, m.Content)
	if !ok {
		return
	}
	c := b.registry.Get(inv.Name)
	if c == nil {
		return
	}
	if m.GuildID != "" && !b.allow(m.GuildID) {
		log.Printf("[DEBUG] Rate limited command %s on guild %s", inv.Name, m.GuildID)
		return
	}

	inv.Data = &command.MessageContext{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		Username:  m.Author.Username,
		Reply:     &channelReplier{s: s, channelID: m.ChannelID},
	}

	if err := c.Run(context.Background(), inv); err != nil {
		log.Printf("[ERR] Error running command %s: %v", c.Name(), err)
		b.errLog.Printf("Unhandled message: %s", m.Content)
	}
}

// pickWelcome chooses one of the split welcome messages.
func pickWelcome(raw, token string, intn func(int) int) (string, bool) {
	var msgs []string
	for _, m := range strings.Split(raw, token) {
		if m = strings.TrimSpace(m); m != "" {
			msgs = append(msgs, m)
		}
	}
	if len(msgs) == 0 {
		return "", false
	}
	return msgs[intn(len(msgs))], true
}

// welcomeChannel is the system channel, else the first text channel by position.
func welcomeChannel(guild *discordgo.Guild, channels []*discordgo.Channel) string {
	if guild != nil && guild.SystemChannelID != "" {
		return guild.SystemChannelID
	}
	var first *discordgo.Channel
	for _, ch := range channels {
		if ch.Type != discordgo.ChannelTypeGuildText {
			continue
		}
		if first == nil || ch.Position < first.Position {
			first = ch
		}
	}
	if first == nil {
		return ""
	}
	return first.ID
}
