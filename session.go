package stickergen

import "sync"

// Session holds the stickers generated in the current session, newest first.
// Nothing in a session outlives the process.
type Session struct {
	stickers []Sticker
	mu       sync.RWMutex
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{stickers: make([]Sticker, 0)}
}

// Add prepends s to the session.
func (s *Session) Add(sticker Sticker) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stickers = append([]Sticker{sticker}, s.stickers...)
}

// Remove deletes the sticker with the given id and reports whether it existed.
func (s *Session) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, st := range s.stickers {
		if st.ID == id {
			s.stickers = append(s.stickers[:i:i], s.stickers[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the sticker with the given id.
func (s *Session) Get(id string) (Sticker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.stickers {
		if st.ID == id {
			return st, true
		}
	}
	return Sticker{}, false
}

// List returns the stickers, newest first.
func (s *Session) List() []Sticker {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	out := make([]Sticker, len(s.stickers))
	copy(out, s.stickers)
	return out
}

// Len returns the number of stickers.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stickers)
}

// Clear removes every sticker.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stickers = make([]Sticker, 0)
}
