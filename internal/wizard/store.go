// internal/wizard/store.go
package wizard

import (
    "errors"
    "sync"
    "time"

    "github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Store holds live wizard sessions in memory. Sessions are deliberately not
// persisted: the wizard is ephemeral client state that dies with the session,
// so a mutex-guarded map is the whole storage story.
type Store struct {
    mu       sync.RWMutex
    sessions map[string]Session
}

func NewStore() *Store {
    return &Store{sessions: make(map[string]Session)}
}

// Create registers a fresh session in the input step. apiAvailable comes
// from the startup health probe and governs live-vs-demo for the whole
// session; demoMode forces the fixture path regardless.
func (st *Store) Create(apiAvailable, demoMode bool) Session {
    now := time.Now().UTC()
    s := Session{
        ID:           uuid.New().String(),
        Step:         StepInput,
        APIAvailable: apiAvailable,
        DemoMode:     demoMode,
        CreatedAt:    now,
        UpdatedAt:    now,
    }
    st.mu.Lock()
    st.sessions[s.ID] = s
    st.mu.Unlock()
    return s
}

// Get returns a copy; callers never see shared mutable state.
func (st *Store) Get(id string) (Session, error) {
    st.mu.RLock()
    s, ok := st.sessions[id]
    st.mu.RUnlock()
    if !ok {
        return Session{}, ErrSessionNotFound
    }
    return s.clone(), nil
}

// Dispatch runs the reducer under the write lock so concurrent events on the
// same session serialize. The stored session is only replaced when the
// reducer accepts the event.
func (st *Store) Dispatch(id string, ev Event) (Session, error) {
    st.mu.Lock()
    defer st.mu.Unlock()

    s, ok := st.sessions[id]
    if !ok {
        return Session{}, ErrSessionNotFound
    }
    next, err := Apply(s, ev)
    if err != nil {
        return s.clone(), err
    }
    st.sessions[id] = next
    return next.clone(), nil
}

// Delete drops a session, e.g. when the client abandons the wizard.
func (st *Store) Delete(id string) {
    st.mu.Lock()
    delete(st.sessions, id)
    st.mu.Unlock()
}
