// Package player reads the external video player over mpris. It is a
// read-only collaborator: the lyrics core receives titles, durations
// and the playback clock from here as plain values and never reaches
// back into player state.
package player

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/lyricast/lyricast/internal/track"
)

const (
	mprisPath        = "/org/mpris/MediaPlayer2"
	mprisPlayerIface = "org.mpris.MediaPlayer2.Player"
)

type Event int

const (
	EventVideoChanged Event = iota
	EventSeeked
	EventPlaybackStateChanged
)

type EventData struct {
	Type     Event
	Video    *track.NowPlaying
	Position int64
	Playing  bool
}

// Source watches one mpris service and turns its signals and polled
// properties into video/position events.
type Source struct {
	bus        *dbus.Conn
	service    string
	signalChan chan *dbus.Signal
	stopChan   chan struct{}
	stopOnce   sync.Once
	eventChan  chan EventData

	mu            sync.Mutex
	video         *track.NowPlaying
	playing       bool
	lastPosition  int64
	lastPositionT time.Time
}

func NewSource(bus *dbus.Conn, mprisService string) (*Source, error) {
	if bus == nil {
		return nil, errors.New("nil dbus connection")
	}
	if mprisService == "" {
		return nil, errors.New("empty mpris service name")
	}

	return &Source{
		bus:       bus,
		service:   mprisService,
		eventChan: make(chan EventData, 16),
	}, nil
}

// Start subscribes to the service's property-change and seek signals.
// Polling still works without it, so a failure here only degrades
// latency of video-change detection.
func (s *Source) Start() error {
	s.signalChan = make(chan *dbus.Signal, 10)
	s.stopChan = make(chan struct{})

	s.bus.Signal(s.signalChan)

	matches := []string{
		fmt.Sprintf(
			"type='signal',sender='%s',interface='org.freedesktop.DBus.Properties',member='PropertiesChanged',path='%s'",
			s.service, mprisPath,
		),
		fmt.Sprintf(
			"type='signal',sender='%s',interface='%s',member='Seeked',path='%s'",
			s.service, mprisPlayerIface, mprisPath,
		),
	}
	for _, match := range matches {
		if err := s.bus.BusObject().Call("org.freedesktop.DBus.AddMatch", 0, match).Err; err != nil {
			return fmt.Errorf("failed to add dbus match: %w", err)
		}
	}

	go s.signalLoop()

	return nil
}

func (s *Source) Stop() {
	s.stopOnce.Do(func() {
		if s.stopChan != nil {
			close(s.stopChan)
		}
	})
}

func (s *Source) Events() <-chan EventData {
	return s.eventChan
}

// CurrentVideo reads the now-playing metadata directly from the player.
func (s *Source) CurrentVideo() (*track.NowPlaying, error) {
	obj := s.bus.Object(s.service, mprisPath)

	prop, err := obj.GetProperty(mprisPlayerIface + ".Metadata")
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata property: %w", err)
	}

	metadata, ok := prop.Value().(map[string]dbus.Variant)
	if !ok {
		return nil, fmt.Errorf("unexpected metadata type %T", prop.Value())
	}

	video := nowPlayingFromMetadata(metadata)
	if !video.IsValid() {
		return nil, errors.New("player reported no video title")
	}

	return video, nil
}

// Position reads the playback clock in whole seconds.
func (s *Source) Position() (int64, error) {
	obj := s.bus.Object(s.service, mprisPath)

	prop, err := obj.GetProperty(mprisPlayerIface + ".Position")
	if err != nil {
		return 0, fmt.Errorf("failed to get position property: %w", err)
	}

	micros, ok := prop.Value().(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected position type %T", prop.Value())
	}
	if micros < 0 {
		return 0, nil
	}

	return micros / 1_000_000, nil
}

// Poll reads the player once and emits a video-change or seek event
// when warranted. Called on every ui tick.
func (s *Source) Poll() error {
	video, err := s.CurrentVideo()
	if err != nil {
		return err
	}

	pos, err := s.Position()
	if err != nil {
		return err
	}

	s.mu.Lock()
	previous := s.video
	seeked := s.detectSeekLocked(pos)
	s.recordPositionLocked(pos)

	if !video.IsSameVideo(previous) {
		s.video = video
		s.mu.Unlock()
		s.emit(EventData{Type: EventVideoChanged, Video: video, Position: pos})
		return nil
	}
	s.mu.Unlock()

	if seeked {
		s.emit(EventData{Type: EventSeeked, Position: pos})
	}

	return nil
}

// detectSeekLocked flags position jumps bigger than normal playback
// advance since the last poll.
func (s *Source) detectSeekLocked(newPosition int64) bool {
	if s.lastPositionT.IsZero() {
		return false
	}

	elapsed := time.Since(s.lastPositionT)
	expected := s.lastPosition + int64(elapsed.Seconds())

	diff := newPosition - expected
	if diff < 0 {
		diff = -diff
	}

	return diff > 3
}

func (s *Source) recordPositionLocked(pos int64) {
	s.lastPosition = pos
	s.lastPositionT = time.Now()
}

func (s *Source) signalLoop() {
	for {
		select {
		case sig, ok := <-s.signalChan:
			if !ok {
				return
			}
			s.handleSignal(sig)
		case <-s.stopChan:
			return
		}
	}
}

func (s *Source) handleSignal(sig *dbus.Signal) {
	if sig == nil {
		return
	}

	switch sig.Name {
	case "org.freedesktop.DBus.Properties.PropertiesChanged":
		s.handlePropertiesChanged(sig)
	case "org.mpris.MediaPlayer2.Player.Seeked":
		s.handleSeeked(sig)
	}
}

func (s *Source) handlePropertiesChanged(sig *dbus.Signal) {
	if len(sig.Body) < 2 {
		return
	}

	iface, ok := sig.Body[0].(string)
	if !ok || iface != mprisPlayerIface {
		return
	}

	changed, ok := sig.Body[1].(map[string]dbus.Variant)
	if !ok {
		return
	}

	if metadataVariant, exists := changed["Metadata"]; exists {
		metadata, ok := metadataVariant.Value().(map[string]dbus.Variant)
		if ok {
			video := nowPlayingFromMetadata(metadata)
			if video.IsValid() {
				s.mu.Lock()
				s.video = video
				s.lastPosition = 0
				s.lastPositionT = time.Now()
				s.mu.Unlock()

				s.emit(EventData{Type: EventVideoChanged, Video: video})
			}
		}
	}

	if playbackVariant, exists := changed["PlaybackStatus"]; exists {
		if status, ok := playbackVariant.Value().(string); ok {
			playing := status == "Playing"
			s.mu.Lock()
			s.playing = playing
			s.lastPositionT = time.Now()
			s.mu.Unlock()

			s.emit(EventData{Type: EventPlaybackStateChanged, Playing: playing})
		}
	}
}

func (s *Source) handleSeeked(sig *dbus.Signal) {
	if len(sig.Body) < 1 {
		return
	}

	micros, ok := sig.Body[0].(int64)
	if !ok || micros < 0 {
		return
	}
	pos := micros / 1_000_000

	s.mu.Lock()
	s.recordPositionLocked(pos)
	s.mu.Unlock()

	s.emit(EventData{Type: EventSeeked, Position: pos})
}

// emit never blocks; a slow consumer just misses intermediate events
// and catches up on the next poll.
func (s *Source) emit(event EventData) {
	select {
	case s.eventChan <- event:
	default:
	}
}
