package models

import (
	"time"
)

// Game represents one playthrough inside a session
type Game struct {
	// Phase is the current phase of the game
	Phase Phase

	// Round is the current round number; a round is one full anchor rotation
	Round int

	// MaxRounds is the configured number of rounds before the game ends
	MaxRounds int

	// AnchorID is the participant currently exempt from answering and voting
	AnchorID string

	// PlayerIDs is the roster snapshot taken at game start, in rotation order.
	// Participants joining mid-game are not part of it.
	PlayerIDs []string

	// Term is the prompt term being defined this round
	Term string

	// TrueDefinition is the real definition of the current term
	TrueDefinition string

	// UsedTerms holds every term already drawn this game, to avoid repeats
	UsedTerms []string

	// Answers holds the submitted and system answers for the current round
	Answers []*Answer

	// PresentIndex is the cursor into the reveal order; -1 before any reveal
	PresentIndex int

	// PhaseStartedAt is when the current phase began
	PhaseStartedAt time.Time

	// CreatedAt is when the game was created
	CreatedAt time.Time
}

// Answer returns the answer with the given id, or nil.
func (g *Game) Answer(answerID string) *Answer {
	for _, a := range g.Answers {
		if a.ID == answerID {
			return a
		}
	}
	return nil
}

// AnswerByAuthor returns the answer authored by the given participant, or nil.
func (g *Game) AnswerByAuthor(participantID string) *Answer {
	for _, a := range g.Answers {
		if a.AuthorID == participantID {
			return a
		}
	}
	return nil
}
