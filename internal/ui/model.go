package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lyricast/lyricast/internal/artwork"
	"github.com/lyricast/lyricast/internal/config"
	"github.com/lyricast/lyricast/internal/lyrics"
	"github.com/lyricast/lyricast/internal/player"
	"github.com/lyricast/lyricast/internal/session"
	"github.com/lyricast/lyricast/internal/terminal"
	"github.com/lyricast/lyricast/internal/timeline"
	"github.com/lyricast/lyricast/internal/track"
)

// Status is the resolution lifecycle as shown to the user.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusNoLyrics
	StatusError
)

type TickMsg time.Time

type PlayerEventMsg struct {
	Event player.EventData
}

// LyricsResolvedMsg carries one finished resolution attempt. Token ties
// it to the attempt it was started under; stale results are discarded
// in the update loop.
type LyricsResolvedMsg struct {
	Token      session.Token
	Resolution *lyrics.Resolution
	Err        error
}

type ArtworkFetchedMsg struct {
	Palette *artwork.Palette
	Err     error
}

type Model struct {
	source   *player.Source
	resolver *lyrics.Resolver
	session  *session.Session

	syncOffset float64
	hideHeader bool
	termCaps   *terminal.Capabilities

	video      *track.NowPlaying
	resolution *lyrics.Resolution
	active     timeline.State
	position   int64
	status     Status
	statusErr  error
	palette    *artwork.Palette

	width     int
	height    int
	tickCount int
	anim      AnimState
	quitting  bool
}

type ModelConfig struct {
	Source     *player.Source
	Resolver   *lyrics.Resolver
	SyncOffset float64
	HideHeader bool
	TermCaps   *terminal.Capabilities
}

func NewModel(cfg ModelConfig) Model {
	return Model{
		source:     cfg.Source,
		resolver:   cfg.Resolver,
		session:    session.New(),
		syncOffset: cfg.SyncOffset,
		hideHeader: cfg.HideHeader,
		termCaps:   cfg.TermCaps,
		active:     timeline.State{Index: -1},
		palette:    artwork.DefaultPalette(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		m.listenForPlayerEvents(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(config.PollInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) listenForPlayerEvents() tea.Cmd {
	if m.source == nil {
		return nil
	}

	return func() tea.Msg {
		event, ok := <-m.source.Events()
		if !ok {
			return nil
		}
		return PlayerEventMsg{Event: event}
	}
}

func (m *Model) resetForNewVideo() {
	m.resolution = nil
	m.active = timeline.State{Index: -1}
	m.statusErr = nil
	m.palette = artwork.DefaultPalette()
	m.anim.Reset()
}

// retrack recomputes the active line for the current clock value and
// restarts the line animation when the line changed.
func (m *Model) retrack() {
	if m.resolution == nil || len(m.resolution.Synced) == 0 {
		return
	}

	adjusted := float64(m.position) + m.syncOffset
	next := timeline.ActiveLine(m.resolution.Synced, adjusted)

	if next.Index != m.active.Index {
		m.anim.StartLine(next.Duration)
	}
	m.active = next
}

func (m *Model) Stop() {
	m.session.Close()
	if m.source != nil {
		m.source.Stop()
	}
}
