package player

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"tastybot/internal/music/sources"
)

// Manager owns the voice state of every guild. All state lives on the
// goroutine running Run; public methods submit operations to it and wait.
type Manager struct {
	gateway  Gateway
	resolver sources.Resolver
	renderer Renderer
	opts     Options

	ops    chan func()
	done   chan struct{}
	runCtx context.Context

	guilds map[string]*guildState
}

type guildState struct {
	guildID string
	conn    Connection
	current *sources.DisplayInfo
	queue   []sources.TrackRef

	playing *session
	loading bool
	joining chan struct{}
	// gen changes on every reset; resolutions started before it are dropped.
	gen uint64
}

type session struct {
	id       string
	playback Playback
	audio    *sources.Audio
}

func New(gateway Gateway, resolver sources.Resolver, renderer Renderer, opts Options) *Manager {
	if opts.Events == nil {
		opts.Events = nopEvents{}
	}
	return &Manager{
		gateway:  gateway,
		resolver: resolver,
		renderer: renderer,
		opts:     opts,
		ops:      make(chan func()),
		done:     make(chan struct{}),
		runCtx:   context.Background(),
		guilds:   make(map[string]*guildState),
	}
}

// Run processes operations until ctx is done, then disconnects every guild.
func (m *Manager) Run(ctx context.Context) error {
	m.runCtx = ctx
	defer close(m.done)

	log.Printf("[Player] Manager loop started")
	for {
		select {
		case <-ctx.Done():
			m.resetAll()
			log.Printf("[Player] Manager loop stopped")
			return ctx.Err()
		case op := <-m.ops:
			op()
		}
	}
}

// do runs fn on the loop and waits for it.
func (m *Manager) do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	op := func() {
		defer close(finished)
		fn()
	}
	select {
	case m.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	case <-m.done:
		return ErrClosed
	}
	<-finished
	return nil
}

// post queues fn from a background goroutine without waiting.
func (m *Manager) post(fn func()) bool {
	select {
	case m.ops <- fn:
		return true
	case <-m.done:
		return false
	}
}

func (m *Manager) guild(guildID string) *guildState {
	g, ok := m.guilds[guildID]
	if !ok {
		g = &guildState{guildID: guildID}
		m.guilds[guildID] = g
	}
	return g
}

// Connect makes sure the bot sits in the user's voice channel, leaving any
// other channel of the guild first.
func (m *Manager) Connect(ctx context.Context, guildID, userID string) (bool, error) {
	channelID, ok := m.gateway.UserChannel(guildID, userID)
	if !ok {
		return false, ErrUserNotInVoice
	}

	for {
		var (
			wait <-chan struct{}
			join bool
			gen  uint64
		)
		err := m.do(ctx, func() {
			g := m.guild(guildID)
			if g.joining != nil {
				wait = g.joining
				return
			}
			if g.conn != nil && g.conn.Live() && g.conn.ChannelID() == channelID {
				return
			}
			if g.conn != nil {
				log.Printf("[Player] Leaving channel %s on guild %s", g.conn.ChannelID(), guildID)
				m.reset(g)
			}
			g.joining = make(chan struct{})
			join = true
			gen = g.gen
		})
		if err != nil {
			return false, err
		}

		if wait != nil {
			select {
			case <-wait:
				continue
			case <-ctx.Done():
				return false, ctx.Err()
			}
		}
		if !join {
			return true, nil
		}
		return m.join(ctx, guildID, channelID, gen)
	}
}

func (m *Manager) join(ctx context.Context, guildID, channelID string, gen uint64) (bool, error) {
	joinCtx := ctx
	if m.opts.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		joinCtx, cancel = context.WithTimeout(ctx, m.opts.ConnectTimeout)
		defer cancel()
	}

	conn, joinErr := m.gateway.Join(joinCtx, guildID, channelID)

	var stale bool
	err := m.do(context.Background(), func() {
		g := m.guild(guildID)
		close(g.joining)
		g.joining = nil
		if joinErr != nil {
			return
		}
		if g.gen != gen {
			stale = true
			return
		}
		g.conn = conn
	})

	switch {
	case joinErr != nil:
		return false, fmt.Errorf("failed to join voice channel %s: %w", channelID, joinErr)
	case err != nil || stale:
		if conn != nil {
			conn.Disconnect()
		}
		if err != nil {
			return false, err
		}
		return false, ErrNotConnected
	}

	log.Printf("[Player] Joined voice channel %s on guild %s", channelID, guildID)
	return true, nil
}

func (m *Manager) EmptyQueue(guildID string) {
	m.do(context.Background(), func() {
		m.guild(guildID).queue = nil
	})
}

// Enqueue appends refs to the queue tail and returns how many were accepted.
func (m *Manager) Enqueue(guildID string, refs ...sources.TrackRef) (int, error) {
	var added int
	var full bool
	err := m.do(context.Background(), func() {
		g := m.guild(guildID)
		for _, ref := range refs {
			if m.opts.MaxQueueLength > 0 && len(g.queue) >= m.opts.MaxQueueLength {
				full = true
				break
			}
			g.queue = append(g.queue, ref)
			added++
		}
		log.Printf("[Player] Added %d track(s) to queue | guild=%s QueueLen=%d", added, guildID, len(g.queue))
	})
	if err != nil {
		return 0, err
	}
	if full {
		return added, ErrQueueFull
	}
	return added, nil
}

// IsPlaying reports whether the guild has a live connection that is
// rendering or about to render a track.
func (m *Manager) IsPlaying(guildID string) bool {
	var playing bool
	m.do(context.Background(), func() {
		playing = m.isPlaying(m.guild(guildID))
	})
	return playing
}

func (m *Manager) isPlaying(g *guildState) bool {
	return g.conn != nil && g.conn.Live() && (g.playing != nil || g.loading)
}

// PlayNext starts the head of the queue. When a track is rendering it is
// stopped and its completion advances the queue.
func (m *Manager) PlayNext(ctx context.Context, guildID string) error {
	var err error
	if derr := m.do(ctx, func() {
		err = m.playNext(m.guild(guildID))
	}); derr != nil {
		return derr
	}
	return err
}

func (m *Manager) playNext(g *guildState) error {
	if len(g.queue) == 0 {
		return ErrQueueEmpty
	}
	if g.conn == nil {
		return ErrNotConnected
	}
	if g.playing != nil {
		log.Printf("[Player] Stopping current track before playing next | guild=%s", g.guildID)
		g.playing.playback.Stop()
		return nil
	}
	if g.loading {
		return nil
	}

	ref := g.queue[0]
	g.queue = g.queue[1:]
	g.loading = true
	gen := g.gen
	guildID := g.guildID
	ctx := m.runCtx

	log.Printf("[Player] Preparing track %q | guild=%s QueueLen=%d", ref.Label(), guildID, len(g.queue))
	go func() {
		audio, info, err := m.resolver.Resolve(ctx, ref)
		ok := m.post(func() {
			m.onResolved(guildID, gen, ref, audio, info, err)
		})
		if !ok && audio != nil {
			audio.Cleanup()
		}
	}()
	return nil
}

func (m *Manager) onResolved(guildID string, gen uint64, ref sources.TrackRef, audio *sources.Audio, info sources.DisplayInfo, err error) {
	g := m.guild(guildID)
	if g.gen != gen {
		if audio != nil {
			audio.Cleanup()
		}
		return
	}
	g.loading = false

	if err != nil {
		log.Printf("[WARN] [Player] Skipping track %q due to error: %v", ref.Label(), err)
		m.opts.Events.TrackFailed(guildID, ref, err)
		m.advance(g)
		return
	}

	if g.conn == nil || !g.conn.Live() {
		audio.Cleanup()
		m.reset(g)
		return
	}

	pb, err := m.renderer.Render(g.conn, audio)
	if err != nil {
		audio.Cleanup()
		log.Printf("[WARN] [Player] Failed to start playback of %q: %v", ref.Label(), err)
		m.opts.Events.TrackFailed(guildID, ref, err)
		m.advance(g)
		return
	}

	s := &session{id: uuid.NewString(), playback: pb, audio: audio}
	g.playing = s
	g.current = &info
	log.Printf("[Player] Now playing track %q | guild=%s QueueLen=%d", info.String(), guildID, len(g.queue))
	m.opts.Events.TrackStarted(guildID, info)

	go func() {
		err := <-pb.Done()
		ok := m.post(func() {
			m.onTrackComplete(guildID, s.id, err)
		})
		if !ok {
			audio.Cleanup()
		}
	}()
}

// onTrackComplete handles the end of a render. Completions of sessions that
// were already replaced or reset are ignored.
func (m *Manager) onTrackComplete(guildID, sessionID string, err error) {
	g := m.guild(guildID)
	if g.playing == nil || g.playing.id != sessionID {
		return
	}
	if err != nil {
		log.Printf("[WARN] [Player] Playback finished with error: %v", err)
	}

	g.playing.audio.Cleanup()
	g.playing = nil
	g.current = nil

	if g.conn == nil {
		return
	}
	m.advance(g)
}

func (m *Manager) advance(g *guildState) {
	if len(g.queue) == 0 {
		log.Printf("[Player] Queue is empty, leaving voice | guild=%s", g.guildID)
		m.reset(g)
		return
	}
	if err := m.playNext(g); err != nil {
		log.Printf("[WARN] [Player] Could not advance queue on guild %s: %v", g.guildID, err)
		m.reset(g)
	}
}

// Stop ends playback and leaves voice. The user must share the bot's channel.
func (m *Manager) Stop(guildID, userID string) error {
	return m.control(guildID, userID, func(g *guildState) {
		log.Printf("[Player] Stop called | guild=%s", guildID)
		m.reset(g)
	})
}

// Skip stops the current render; its completion plays the next entry.
// A head that is still loading is left alone and ErrTrackLoading returned.
func (m *Manager) Skip(guildID, userID string) error {
	var err error
	if cerr := m.control(guildID, userID, func(g *guildState) {
		if g.playing == nil {
			err = ErrTrackLoading
			return
		}
		log.Printf("[Player] Skip called | guild=%s", guildID)
		g.playing.playback.Stop()
	}); cerr != nil {
		return cerr
	}
	return err
}

// LeaveIfIdle disconnects a guild that is connected but has nothing
// rendering or loading. It reports whether it left.
func (m *Manager) LeaveIfIdle(guildID string) bool {
	var left bool
	m.do(context.Background(), func() {
		g := m.guild(guildID)
		if g.conn == nil || m.isPlaying(g) {
			return
		}
		log.Printf("[Player] Leaving idle voice channel | guild=%s", guildID)
		m.reset(g)
		left = true
	})
	return left
}

func (m *Manager) control(guildID, userID string, fn func(g *guildState)) error {
	userChannel, inVoice := m.gateway.UserChannel(guildID, userID)

	var err error
	if derr := m.do(context.Background(), func() {
		g := m.guild(guildID)
		if !m.isPlaying(g) {
			err = ErrNothingPlaying
			return
		}
		if !inVoice || userChannel != g.conn.ChannelID() {
			err = ErrNotSameChannel
			return
		}
		fn(g)
	}); derr != nil {
		return derr
	}
	return err
}

func (m *Manager) Snapshot(guildID string) Snapshot {
	var snap Snapshot
	m.do(context.Background(), func() {
		g := m.guild(guildID)
		snap.Status = status(g)
		if g.conn != nil {
			snap.ChannelID = g.conn.ChannelID()
		}
		if g.current != nil {
			cur := *g.current
			snap.Current = &cur
		}
		snap.Queue = append([]sources.TrackRef(nil), g.queue...)
	})
	return snap
}

func status(g *guildState) PlayerStatus {
	switch {
	case g.conn == nil:
		return StatusDisconnected
	case g.playing != nil:
		return StatusPlaying
	case g.loading:
		return StatusLoading
	default:
		return StatusIdle
	}
}

// Shutdown disconnects every guild. The loop keeps running.
func (m *Manager) Shutdown() {
	m.do(context.Background(), m.resetAll)
}

func (m *Manager) resetAll() {
	for _, g := range m.guilds {
		m.reset(g)
	}
}

// reset returns the guild to the disconnected state.
func (m *Manager) reset(g *guildState) {
	g.gen++
	if g.playing != nil {
		g.playing.playback.Stop()
		g.playing.audio.Cleanup()
		g.playing = nil
	}
	g.current = nil
	g.queue = nil
	g.loading = false
	if g.conn != nil {
		if err := g.conn.Disconnect(); err != nil {
			log.Printf("[WARN] [Player] Disconnect failed on guild %s: %v", g.guildID, err)
		}
		g.conn = nil
	}
}
