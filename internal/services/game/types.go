package game

import (
	"time"

	"github.com/Mr-Jen/lexifine-server/internal/common/clock"
	"github.com/Mr-Jen/lexifine-server/internal/common/uuid"
	"github.com/Mr-Jen/lexifine-server/internal/random"
	lexiconRepo "github.com/Mr-Jen/lexifine-server/internal/repositories/lexicon"
	sessionRepo "github.com/Mr-Jen/lexifine-server/internal/repositories/session"
	"github.com/Mr-Jen/lexifine-server/internal/services/messaging"
)

// Config holds configuration for the game service
type Config struct {
	// Repository dependencies
	SessionRepo sessionRepo.Repository
	LexiconRepo lexiconRepo.Repository

	// Service dependencies
	Messaging     messaging.Service
	Notifier      Notifier
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Random        *random.Source

	// MaxRounds is the number of full anchor rotations per game
	MaxRounds int

	// DefineDuration is the define-phase deadline
	DefineDuration time.Duration

	// VoteTailDuration runs after the second-to-last voter locks in
	VoteTailDuration time.Duration

	// ScoreboardDuration is how long a mid-game scoreboard is shown
	ScoreboardDuration time.Duration

	// FinalScoreboardDuration is how long the last scoreboard is shown
	FinalScoreboardDuration time.Duration

	// RevealDelay is the pause between game start and the first define phase
	RevealDelay time.Duration

	// TruthGuessPoints go to each voter who picks the true definition
	TruthGuessPoints int

	// FooledVotePoints go to an answer's author per vote it received
	FooledVotePoints int

	// DefaultAnswerText fills in for ghostwriters who never submitted
	DefaultAnswerText string
}

// CreateSessionInput contains parameters for creating a session
type CreateSessionInput struct {
	// ParticipantID is the connection id of the creating participant
	ParticipantID string

	// Name is the creator's display name
	Name string
}

// CreateSessionOutput contains the result of creating a session
type CreateSessionOutput struct {
	// SessionID is the unique identifier for the created session
	SessionID string

	// HostID is the participant holding lobby privileges (the creator)
	HostID string
}

// JoinSessionInput contains parameters for joining a session
type JoinSessionInput struct {
	SessionID     string
	ParticipantID string

	// Name is the joining participant's display name
	Name string
}

// JoinSessionOutput contains the result of joining a session
type JoinSessionOutput struct {
	HostID string

	// Participants is the roster including the new member
	Participants []ParticipantInfo

	// GameInProgress indicates the joiner is spectating an active game
	GameInProgress bool
}

// DisconnectInput contains parameters for a participant disconnect
type DisconnectInput struct {
	SessionID     string
	ParticipantID string
}

// DisconnectOutput contains the result of a disconnect
type DisconnectOutput struct {
	// SessionDestroyed indicates the roster emptied and the session is gone
	SessionDestroyed bool

	// RemovalDeferred indicates the participant was queued as a pending leave
	RemovalDeferred bool
}

// SessionExistsInput contains parameters for the existence probe
type SessionExistsInput struct {
	SessionID string
}

// SessionExistsOutput contains the result of the existence probe
type SessionExistsOutput struct {
	Exists bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	SessionID     string
	ParticipantID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Success bool
}

// SkipTermInput contains parameters for the anchor's term skip
type SkipTermInput struct {
	SessionID     string
	ParticipantID string
}

// SkipTermOutput contains the result of a term skip
type SkipTermOutput struct {
	// Term is the freshly drawn term
	Term string
}

// SubmitAnswerInput contains parameters for submitting a fake definition
type SubmitAnswerInput struct {
	SessionID     string
	ParticipantID string

	// Text is the fabricated definition
	Text string

	// LockIn marks the participant ready for this phase
	LockIn bool
}

// SubmitAnswerOutput contains the result of submitting an answer
type SubmitAnswerOutput struct {
	// AnswerID is the id of the created or updated answer
	AnswerID string

	// PhaseAdvanced indicates the submission completed the define phase
	PhaseAdvanced bool
}

// SubmitAnswerTitleInput contains parameters for titling an answer
type SubmitAnswerTitleInput struct {
	SessionID     string
	ParticipantID string
	AnswerID      string
	Title         string
}

// SubmitAnswerTitleOutput contains the result of titling an answer
type SubmitAnswerTitleOutput struct {
	Success bool
}

// SubmitVoteInput contains parameters for voting on an answer
type SubmitVoteInput struct {
	SessionID     string
	ParticipantID string
	AnswerID      string

	// LockIn marks the participant ready for this phase
	LockIn bool
}

// SubmitVoteOutput contains the result of a vote
type SubmitVoteOutput struct {
	// PhaseAdvanced indicates the vote completed the vote phase
	PhaseAdvanced bool
}

// UnreadyInput contains parameters for clearing a ready flag
type UnreadyInput struct {
	SessionID     string
	ParticipantID string
}

// UnreadyOutput contains the result of clearing a ready flag
type UnreadyOutput struct {
	Success bool
}

// PresentNextInput contains parameters for revealing the next answer
type PresentNextInput struct {
	SessionID     string
	ParticipantID string
}

// PresentNextOutput contains the result of a reveal
type PresentNextOutput struct {
	// Revealed is the revealed answer and its award
	Revealed *PresentNextPayload
}

// StartScoreboardInput contains parameters for entering the scoreboard
type StartScoreboardInput struct {
	SessionID     string
	ParticipantID string
}

// StartScoreboardOutput contains the result of entering the scoreboard
type StartScoreboardOutput struct {
	// Final indicates this scoreboard concludes the game
	Final bool
}
