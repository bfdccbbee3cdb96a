package models

import (
	"time"
)

// Session represents a persistent group of participants that may run
// one or more games. A session without an active game is in the lobby.
type Session struct {
	// ID is the unique identifier for the session
	ID string

	// HostID is the participant holding lobby privileges (may start games)
	HostID string

	// Participants is the ordered roster; order defines the anchor rotation
	Participants []*Participant

	// Game is the active game, or nil while the session is in the lobby
	Game *Game

	// PendingLeaves holds participant ids whose removal is deferred to the
	// next safe phase boundary because they disconnected mid-game
	PendingLeaves map[string]struct{}

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session last handled an event
	UpdatedAt time.Time
}

// Participant returns the roster entry with the given id, or nil.
func (s *Session) Participant(participantID string) *Participant {
	for _, p := range s.Participants {
		if p.ID == participantID {
			return p
		}
	}
	return nil
}

// ParticipantIDs returns the roster ids in rotation order.
func (s *Session) ParticipantIDs() []string {
	ids := make([]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		ids = append(ids, p.ID)
	}
	return ids
}

// InGame reports whether the participant is part of the active game's
// roster snapshot. Late joiners spectate until the next game.
func (s *Session) InGame(participantID string) bool {
	if s.Game == nil {
		return false
	}
	for _, id := range s.Game.PlayerIDs {
		if id == participantID {
			return true
		}
	}
	return false
}
