package discord

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"tastybot/internal/config"
	"tastybot/pkg/cmd"
)

// Bot is a Discord bot
type Bot struct {
	dg       *discordgo.Session
	cfg      *config.Config
	registry *cmd.Registry

	errLog    *log.Logger
	errWriter *lumberjack.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	greeted  bool
	rng      *rand.Rand
}

// NewSession creates the discordgo session without connecting it.
func NewSession(token string) (*discordgo.Session, error) {
	dg, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildVoiceStates |
		discordgo.IntentsMessageContent
	return dg, nil
}

func NewBot(dg *discordgo.Session, cfg *config.Config, registry *cmd.Registry) *Bot {
	errWriter := &lumberjack.Logger{
		Filename:   cfg.ErrorLogPath,
		MaxSize:    5,
		MaxBackups: 3,
		MaxAge:     28,
	}
	return &Bot{
		dg:        dg,
		cfg:       cfg,
		registry:  registry,
		errLog:    log.New(errWriter, "", log.LstdFlags),
		errWriter: errWriter,
		limiters:  make(map[string]*rate.Limiter),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run opens the gateway connection and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	b.dg.AddHandler(b.onReady)
	b.dg.AddHandler(b.onGuildCreate)
	b.dg.AddHandler(b.onGuildMemberAdd)
	b.dg.AddHandler(b.onMessageCreate)

	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer b.dg.Close()
	defer b.errWriter.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	return nil
}

// allow applies the per-guild command rate.
func (b *Bot) allow(guildID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	lim, ok := b.limiters[guildID]
	if !ok {
		burst := max(1, int(b.cfg.CommandRate))
		lim = rate.NewLimiter(rate.Limit(b.cfg.CommandRate), burst)
		b.limiters[guildID] = lim
	}
	return lim.Allow()
}
