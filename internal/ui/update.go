package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lyricast/lyricast/internal/artwork"
	"github.com/lyricast/lyricast/internal/lyrics"
	"github.com/lyricast/lyricast/internal/player"
	"github.com/lyricast/lyricast/internal/session"
	"github.com/lyricast/lyricast/internal/track"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case PlayerEventMsg:
		return m.handlePlayerEvent(msg.Event)

	case LyricsResolvedMsg:
		return m.handleLyricsResolved(msg)

	case ArtworkFetchedMsg:
		return m.handleArtworkFetched(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		m.Stop()
		return m, tea.Quit

	case "up", "k", "+", "=":
		m.syncOffset += 0.1
		m.retrack()
		return m, nil

	case "down", "j", "-":
		m.syncOffset -= 0.1
		m.retrack()
		return m, nil

	case "left", "h":
		m.syncOffset -= 0.5
		m.retrack()
		return m, nil

	case "right", "l":
		m.syncOffset += 0.5
		m.retrack()
		return m, nil

	case "0":
		m.syncOffset = 0
		m.retrack()
		return m, nil

	case "tab", "i":
		m.hideHeader = !m.hideHeader
		return m, nil
	}

	return m, nil
}

func (m Model) handlePlayerEvent(event player.EventData) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.listenForPlayerEvents()}

	switch event.Type {
	case player.EventVideoChanged:
		return m.handleVideoChange(event.Video, cmds)

	case player.EventSeeked:
		m.position = event.Position
		m.retrack()
		return m, tea.Batch(cmds...)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleVideoChange(video *track.NowPlaying, cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	// metadata refreshes re-announce the same video; only a real change
	// restarts resolution
	if video.IsSameVideo(m.video) {
		return m, tea.Batch(cmds...)
	}

	m.video = video
	m.resetForNewVideo()

	if !video.IsValid() {
		m.status = StatusIdle
		return m, tea.Batch(cmds...)
	}

	if video.ArtworkURL != "" {
		cmds = append(cmds, fetchArtworkCmd(video.ArtworkURL))
	}

	// replays of a video already resolved this session skip the search
	if cached, ok := m.session.Lookup(video.RawTitle); ok {
		_, tok := m.session.Begin(context.Background())
		m.session.Commit(tok, cached)
		m.resolution = cached
		m.status = StatusReady
		m.retrack()
		return m, tea.Batch(cmds...)
	}

	m.status = StatusLoading
	ctx, tok := m.session.Begin(context.Background())
	cmds = append(cmds, resolveCmd(ctx, m.resolver, tok, video))

	return m, tea.Batch(cmds...)
}

func (m Model) handleLyricsResolved(msg LyricsResolvedMsg) (tea.Model, tea.Cmd) {
	// a newer video superseded this attempt; its result must never
	// overwrite the newer video's state
	if !m.session.Commit(msg.Token, msg.Resolution) {
		return m, nil
	}

	switch {
	case msg.Err == nil:
		m.resolution = msg.Resolution
		m.status = StatusReady
		m.statusErr = nil
		if m.video != nil {
			m.session.Remember(m.video.RawTitle, msg.Resolution)
		}
		m.retrack()

	case errors.Is(msg.Err, lyrics.ErrNoLyricsFound):
		m.status = StatusNoLyrics

	case errors.Is(msg.Err, context.Canceled):
		// superseded mid-flight, the next attempt owns the screen

	default:
		m.status = StatusError
		m.statusErr = msg.Err
	}

	return m, nil
}

func (m Model) handleArtworkFetched(msg ArtworkFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.Err == nil && msg.Palette != nil {
		m.palette = msg.Palette
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.tickCount++

	if m.source == nil {
		m.anim.Advance()
		return m, tickCmd()
	}

	if err := m.source.Poll(); err != nil {
		m.anim.Advance()
		return m, tickCmd()
	}

	pos, err := m.source.Position()
	if err == nil {
		m.position = pos
		m.retrack()
	}

	m.anim.Advance()

	return m, tickCmd()
}

func resolveCmd(ctx context.Context, resolver *lyrics.Resolver, tok session.Token, video *track.NowPlaying) tea.Cmd {
	return func() tea.Msg {
		res, err := resolver.Resolve(ctx, video.RawTitle, video.DurationSecs)
		return LyricsResolvedMsg{Token: tok, Resolution: res, Err: err}
	}
}

func fetchArtworkCmd(artworkURL string) tea.Cmd {
	return func() tea.Msg {
		img, err := artwork.Fetch(artworkURL)
		if err != nil {
			return ArtworkFetchedMsg{Err: err}
		}
		return ArtworkFetchedMsg{Palette: artwork.ExtractPalette(img)}
	}
}
