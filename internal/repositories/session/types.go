package session

import "github.com/Mr-Jen/lexifine-server/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}

type SessionExistsInput struct {
	SessionID string
}
