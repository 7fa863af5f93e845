// cmd/tastybot/main.go
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"tastybot/internal/command"
	"tastybot/internal/command/core"
	"tastybot/internal/command/music"
	"tastybot/internal/config"
	"tastybot/internal/discord"
	"tastybot/internal/music/catalog"
	"tastybot/internal/music/player"
	"tastybot/internal/music/source_resolver"
	"tastybot/internal/music/sources/local"
	"tastybot/internal/music/sources/youtube"
	"tastybot/internal/storage"
	"tastybot/pkg/cmd"
)

func main() {
	log.Println("[INFO] Starting tastybot...")

	if err := run(); err != nil {
		log.Fatalf("[ERR] %v", err)
	}
	log.Println("[INFO] Discord bot exited cleanly")
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(ctx, cfg.StoragePath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("[ERR] Error closing storage: %v", err)
		}
	}()

	songs, err := catalog.Load(cfg.CatalogPath, nil)
	if err != nil {
		return err
	}
	log.Printf("[INFO] Loaded %d songs from %s", songs.Len(), cfg.CatalogPath)

	dg, err := discord.NewSession(cfg.DiscordToken)
	if err != nil {
		return err
	}

	remote := youtube.New(cfg.RemoteVolume, cfg.YouTubeProxy)
	resolver := source_resolver.New(local.New(cfg.LocalVolume, songs), remote)

	voice := discord.NewVoice(dg)
	manager := player.New(voice, resolver, voice, player.Options{
		ConnectTimeout: cfg.VoiceConnectTimeout,
		MaxQueueLength: cfg.MaxQueueLength,
		Events:         &discord.TrackEvents{Store: store},
	})

	registry := cmd.NewRegistry()
	middlewares := []cmd.Middleware{
		command.WithGuildOnly(),
		command.WithCommandLogger(store),
	}
	deps := &music.Deps{Player: manager, Catalog: songs, Remote: remote, History: store}
	for _, c := range music.Commands(deps) {
		registry.Register(cmd.Apply(c, middlewares...))
	}
	registry.Register(cmd.Apply(&core.LinksCommand{Links: cfg.Links}, middlewares...))
	registry.Register(cmd.Apply(&core.LogCommand{Store: store, Prefix: cfg.CommandPrefix}, middlewares...))
	registry.Register(cmd.Apply(&core.HelpCommand{Registry: registry, Prefix: cfg.CommandPrefix}, middlewares...))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return manager.Run(ctx)
	})
	g.Go(func() error {
		return discord.NewBot(dg, cfg, registry).Run(ctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
