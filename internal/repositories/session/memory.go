package session

import (
	"context"
	"errors"
	"sync"

	"github.com/Mr-Jen/lexifine-server/internal/models"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// memoryRepository implements the Repository interface with an in-process
// map. Session state is the single in-memory authority and is never
// persisted across restarts.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

// NewMemory creates a new in-memory session repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string]*models.Session),
	}
}

// SaveSession stores a session
func (r *memoryRepository) SaveSession(_ context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	if input.Session.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[input.Session.ID] = input.Session

	return nil
}

// GetSession retrieves a session by ID
func (r *memoryRepository) GetSession(_ context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[input.SessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return sess, nil
}

// DeleteSession removes a session
func (r *memoryRepository) DeleteSession(_ context.Context, input *DeleteSessionInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[input.SessionID]; !ok {
		return ErrSessionNotFound
	}

	delete(r.sessions, input.SessionID)

	return nil
}

// SessionExists reports whether a session exists
func (r *memoryRepository) SessionExists(_ context.Context, input *SessionExistsInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sessions[input.SessionID]

	return ok, nil
}

// CountSessions returns the number of stored sessions
func (r *memoryRepository) CountSessions(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions), nil
}
