// Package session binds one booking selection to one browser session.
// Sessions live in memory only: the selection is a single mutable
// instance scoped to a browsing session and is deliberately not persisted
// across reloads of the server.
package session

import (
    "sync"
    "time"

    "github.com/lithammer/shortuuid/v3"
    "github.com/sirupsen/logrus"

    "github.com/NHDanDz/movieapp-sub001/internal/booking"
)

// CookieName is the browser cookie carrying the session id.
const CookieName = "booking_session"

type entry struct {
    selection *booking.Selection
    lastSeen  time.Time
}

// Store maps session ids to their selection.  Idle sessions are swept out
// after the configured TTL; touching a session on every access keeps
// active bookings alive indefinitely.
type Store struct {
    mu      sync.Mutex
    entries map[string]*entry
    ttl     time.Duration
    newSel  func() *booking.Selection
}

// NewStore creates a store that builds fresh selections with newSelection
// and expires sessions idle longer than ttl.
func NewStore(ttl time.Duration, newSelection func() *booking.Selection) *Store {
    if ttl <= 0 {
        ttl = 30 * time.Minute
    }
    return &Store{
        entries: map[string]*entry{},
        ttl:     ttl,
        newSel:  newSelection,
    }
}

// Get returns the selection for the given session id, creating a new
// session when the id is unknown or empty.  The returned id must be set
// back on the response cookie so the browser keeps its session.
func (s *Store) Get(id string) (string, *booking.Selection) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if id != "" {
        if e, ok := s.entries[id]; ok {
            e.lastSeen = time.Now()
            return id, e.selection
        }
    }
    id = shortuuid.New()
    s.entries[id] = &entry{selection: s.newSel(), lastSeen: time.Now()}
    return id, s.entries[id].selection
}

// Drop removes a session, abandoning its selection.
func (s *Store) Drop(id string) {
    s.mu.Lock()
    defer s.mu.Unlock()
    delete(s.entries, id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
    s.mu.Lock()
    defer s.mu.Unlock()
    return len(s.entries)
}

// StartSweeper evicts idle sessions every interval until stop is closed.
func (s *Store) StartSweeper(interval time.Duration, stop <-chan struct{}) {
    if interval <= 0 {
        interval = time.Minute
    }
    go func() {
        ticker := time.NewTicker(interval)
        defer ticker.Stop()
        for {
            select {
            case <-stop:
                return
            case <-ticker.C:
                s.sweep()
            }
        }
    }()
}

func (s *Store) sweep() {
    cutoff := time.Now().Add(-s.ttl)
    s.mu.Lock()
    defer s.mu.Unlock()
    evicted := 0
    for id, e := range s.entries {
        if e.lastSeen.Before(cutoff) {
            delete(s.entries, id)
            evicted++
        }
    }
    if evicted > 0 {
        logrus.WithField("evicted", evicted).Debug("swept idle booking sessions")
    }
}
