package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/keshon/datastore"
)

const (
	commandHistoryLimit int = 20
	tracksHistoryLimit  int = 12
)

// Storage keeps per-guild history in a JSON datastore file.
type Storage struct {
	mu     sync.Mutex
	ds     *datastore.DataStore
	cancel context.CancelFunc
}

type CommandHistoryRecord struct {
	ChannelID string    `json:"channel_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Command   string    `json:"command"`
	Param     string    `json:"param"`
	Datetime  time.Time `json:"datetime"`
}

type TrackHistoryRecord struct {
	Title    string    `json:"title"`
	Album    string    `json:"album,omitempty"`
	Artist   string    `json:"artist,omitempty"`
	URL      string    `json:"url,omitempty"`
	PlayedAt time.Time `json:"played_at"`
}

type Record struct {
	CommandsHistoryList []CommandHistoryRecord `json:"cmd_history"`
	TracksHistoryList   []TrackHistoryRecord   `json:"tracks_history"`
}

// New opens the datastore at filePath. Its autosave loop runs until ctx is
// cancelled or Close is called.
func New(ctx context.Context, filePath string) (*Storage, error) {
	ctx, cancel := context.WithCancel(ctx)
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("open datastore %s: %w", filePath, err)
	}
	return &Storage{ds: ds, cancel: cancel}, nil
}

// Close stops autosave and flushes the store to disk.
func (s *Storage) Close() error {
	s.cancel()
	return s.ds.Close()
}

// getGuildRecord must be called with s.mu held. A guild without history gets
// an empty record.
func (s *Storage) getGuildRecord(guildID string) (*Record, error) {
	record := &Record{
		CommandsHistoryList: []CommandHistoryRecord{},
		TracksHistoryList:   []TrackHistoryRecord{},
	}
	if _, err := s.ds.Get(guildID, record); err != nil {
		return nil, fmt.Errorf("load guild %s: %w", guildID, err)
	}
	return record, nil
}

func (s *Storage) saveGuildRecord(guildID string, record *Record) error {
	if err := s.ds.Set(guildID, record); err != nil {
		return fmt.Errorf("save guild %s: %w", guildID, err)
	}
	return nil
}

// AppendCommandToHistory appends a command history record for a guild
func (s *Storage) AppendCommandToHistory(guildID string, command CommandHistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.CommandsHistoryList = keepLast(append(record.CommandsHistoryList, command), commandHistoryLimit)
	return s.saveGuildRecord(guildID, record)
}

func (s *Storage) FetchCommandHistory(guildID string) ([]CommandHistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CommandsHistoryList, nil
}

// AppendTrackToHistory records a track that started playing.
func (s *Storage) AppendTrackToHistory(guildID string, track TrackHistoryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getGuildRecord(guildID)
	if err != nil {
		return err
	}

	record.TracksHistoryList = keepLast(append(record.TracksHistoryList, track), tracksHistoryLimit)
	return s.saveGuildRecord(guildID, record)
}

// FetchTracksHistory returns the recently played tracks, newest first.
func (s *Storage) FetchTracksHistory(guildID string) ([]TrackHistoryRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.getGuildRecord(guildID)
	if err != nil {
		return nil, err
	}

	out := make([]TrackHistoryRecord, len(record.TracksHistoryList))
	for i, t := range record.TracksHistoryList {
		out[len(out)-1-i] = t
	}
	return out, nil
}

func keepLast[T any](list []T, limit int) []T {
	if len(list) > limit {
		return list[len(list)-limit:]
	}
	return list
}
