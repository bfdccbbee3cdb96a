package models

import (
	"time"
)

// Participant represents one connection identity inside a session
type Participant struct {
	// ID is the opaque per-connection identifier
	ID string

	// Name is the display name chosen on join
	Name string

	// Points is the participant's accumulated score, reset per game
	Points int

	// RoundPoints is the score earned in the current round, reset per round
	RoundPoints int

	// Ready indicates the participant has locked in an action this phase
	Ready bool

	// VoteAnswerID is the answer the participant voted for this round
	VoteAnswerID string

	// JoinedAt is when the participant joined the session
	JoinedAt time.Time
}
