// Package session owns the lifecycle of lyric resolution attempts for
// one viewing session. Exactly one attempt is current at a time: when a
// new video starts before the previous attempt finished, the previous
// attempt is cancelled and its eventual result is discarded, never
// applied to the new video's state.
package session

import (
	"context"
	"sync"

	"github.com/lyricast/lyricast/internal/lyrics"
)

// Token identifies one resolution attempt. Results are committed back
// with the token they were started under; a stale token is rejected.
type Token uint64

// Session tracks the current attempt and memoizes resolved titles for
// the lifetime of the process. Nothing is persisted across sessions.
type Session struct {
	mu      sync.Mutex
	attempt Token
	cancel  context.CancelFunc
	current *lyrics.Resolution
	memo    map[string]*lyrics.Resolution
}

func New() *Session {
	return &Session{
		memo: make(map[string]*lyrics.Resolution),
	}
}

// Begin starts a new attempt, cancelling any attempt still in flight.
// The returned context must be used for the attempt's network calls so
// superseded work stops instead of racing the new attempt.
func (s *Session) Begin(parent context.Context) (context.Context, Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	s.attempt++
	s.cancel = cancel
	s.current = nil

	return ctx, s.attempt
}

// Commit applies a finished attempt's result. Returns false when a
// newer attempt has begun since tok was issued; the caller must then
// drop the result on the floor.
func (s *Session) Commit(tok Token, res *lyrics.Resolution) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tok != s.attempt {
		return false
	}

	s.current = res
	return true
}

// Current returns the committed resolution of the latest attempt, nil
// while one is in flight or after a no-lyrics outcome.
func (s *Session) Current() *lyrics.Resolution {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Lookup returns a previously resolved title from the session memo.
func (s *Session) Lookup(rawTitle string) (*lyrics.Resolution, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.memo[rawTitle]
	return res, ok
}

// Remember memoizes a resolution under its raw title so replaying the
// same video later in the session skips the network round trips.
func (s *Session) Remember(rawTitle string, res *lyrics.Resolution) {
	if rawTitle == "" || res == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.memo[rawTitle] = res
}

// Close cancels any attempt still in flight.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
