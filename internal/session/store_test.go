package session

import (
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/NHDanDz/movieapp-sub001/internal/booking"
)

func newStore(ttl time.Duration) *Store {
    return NewStore(ttl, func() *booking.Selection {
        return booking.New(nil, "http://localhost")
    })
}

func TestStoreCreatesAndReusesSessions(t *testing.T) {
    store := newStore(time.Minute)

    id, sel := store.Get("")
    require.NotEmpty(t, id)
    require.NotNil(t, sel)

    again, same := store.Get(id)
    assert.Equal(t, id, again)
    assert.Same(t, sel, same)
    assert.Equal(t, 1, store.Len())
}

func TestStoreUnknownIDStartsFresh(t *testing.T) {
    store := newStore(time.Minute)

    id, _ := store.Get("gone-id")
    assert.NotEqual(t, "gone-id", id)
    assert.Equal(t, 1, store.Len())
}

func TestStoreDrop(t *testing.T) {
    store := newStore(time.Minute)
    id, _ := store.Get("")
    store.Drop(id)
    assert.Zero(t, store.Len())
}

func TestSweepEvictsIdleSessions(t *testing.T) {
    store := newStore(10 * time.Millisecond)
    id, _ := store.Get("")
    require.Equal(t, 1, store.Len())

    time.Sleep(20 * time.Millisecond)
    store.sweep()
    assert.Zero(t, store.Len())

    // The old id now starts a new session.
    fresh, _ := store.Get(id)
    assert.NotEqual(t, id, fresh)
}

func TestSweepKeepsActiveSessions(t *testing.T) {
    store := newStore(50 * time.Millisecond)
    id, _ := store.Get("")

    time.Sleep(30 * time.Millisecond)
    store.Get(id) // touch
    time.Sleep(30 * time.Millisecond)
    store.sweep()

    assert.Equal(t, 1, store.Len(), "touched session must survive the sweep")
}
