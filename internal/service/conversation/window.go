package conversation

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/badenlabs/badenbot/internal/core"
)

const (
	// Turns kept per user. Older turns fall off the front.
	windowCapacity = 5

	// A gap longer than this starts a fresh conversation.
	sessionTimeout = 30 * time.Minute

	// Rendered bot replies are clipped to this many runes.
	previewRunes = 100

	// Timestamps only appear on turns older than this, to keep fresh
	// exchanges uncluttered.
	timestampAfter = 5 * time.Minute
)

// Store keeps a short sliding window of recent exchanges per user. All
// methods are safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	turns map[string][]core.Turn
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{
		turns: make(map[string][]core.Turn),
		now:   time.Now,
	}
}

// RecordTurn appends a completed exchange to the user's window, evicting
// idle sessions first and then the oldest turns beyond capacity.
func (s *Store) RecordTurn(userID, userName, message, response string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	window := append(s.turns[userID], core.Turn{
		UserID:    userID,
		UserName:  userName,
		Message:   message,
		Response:  response,
		Timestamp: now,
	})
	if len(window) > windowCapacity {
		window = window[len(window)-windowCapacity:]
	}
	s.turns[userID] = window
}

// Context renders the user's recent exchanges for prompt inclusion. Returns
// the empty string when the session has gone idle.
func (s *Store) Context(userID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)
	window := s.turns[userID]
	if len(window) == 0 {
		return ""
	}

	var b strings.Builder
	for i, turn := range window {
		var suffix string
		if now.Sub(turn.Timestamp) > timestampAfter {
			suffix = turn.Timestamp.Format(" (15:04)")
		}
		fmt.Fprintf(&b, "   %d. %s: %s%s\n", i+1, turn.UserName, turn.Message, suffix)
		fmt.Fprintf(&b, "      Bot: %s\n", preview(turn.Response))
	}
	return b.String()
}

// Reset drops a user's window entirely.
func (s *Store) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.turns, userID)
}

// sweep evicts every idle session. A session is live while its newest turn
// is within the timeout, and a live window keeps all of its turns; turns
// are only deleted as part of whole-user eviction. Caller holds the lock.
func (s *Store) sweep(now time.Time) {
	for userID, window := range s.turns {
		if len(window) == 0 || now.Sub(window[len(window)-1].Timestamp) > sessionTimeout {
			delete(s.turns, userID)
		}
	}
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewRunes {
		return s
	}
	return string(runes[:previewRunes]) + "..."
}
