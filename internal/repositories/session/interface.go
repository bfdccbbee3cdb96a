package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Mr-Jen/lexifine-server/internal/repositories/session Repository

import (
	"context"

	"github.com/Mr-Jen/lexifine-server/internal/models"
)

// Repository defines the interface for session storage. The process entry
// point owns the store and hands it to the engine; there is no ambient
// global registry.
type Repository interface {
	// SaveSession stores a session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// SessionExists reports whether a session exists without retrieving it
	SessionExists(ctx context.Context, input *SessionExistsInput) (bool, error)

	// CountSessions returns the number of stored sessions
	CountSessions(ctx context.Context) (int, error)
}
