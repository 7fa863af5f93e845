package discord

import (
	"log"
	"time"

	"tastybot/internal/music/sources"
	"tastybot/internal/storage"
)

// TrackEvents stores started tracks in the guild history.
type TrackEvents struct {
	Store *storage.Storage
}

func (e *TrackEvents) TrackStarted(guildID string, info sources.DisplayInfo) {
	if e.Store == nil {
		return
	}
	// runs off the player loop
	go func() {
		if err := e.Store.AppendTrackToHistory(guildID, storage.TrackHistoryRecord{
			Title:    info.Title,
			Album:    info.Album,
			Artist:   info.Artist,
			URL:      info.URL,
			PlayedAt: time.Now(),
		}); err != nil {
			log.Printf("[WARN] Failed to store track history on guild %s: %v", guildID, err)
		}
	}()
}

func (e *TrackEvents) TrackFailed(guildID string, ref sources.TrackRef, err error) {
	log.Printf("[WARN] Track %q failed on guild %s: %v", ref.Label(), guildID, err)
}
