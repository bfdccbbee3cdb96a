package game

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/Mr-Jen/lexifine-server/internal/services/game Service

import "context"

// Service defines the interface for session and game operations. Every
// operation is one run-to-completion event: inbound actions and fired
// timers are the only things that mutate session state.
type Service interface {
	// CreateSession creates a new session with the caller as host
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// JoinSession adds a participant to an existing session
	JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error)

	// Disconnect removes a participant, immediately or deferred mid-game
	Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error)

	// SessionExists probes whether a session id is known
	SessionExists(ctx context.Context, input *SessionExistsInput) (*SessionExistsOutput, error)

	// CountSessions reports how many sessions are live
	CountSessions(ctx context.Context) (int, error)

	// StartGame begins a game; host only, one game at a time
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// SkipTerm redraws the prompt without advancing anchor or round
	SkipTerm(ctx context.Context, input *SkipTermInput) (*SkipTermOutput, error)

	// SubmitAnswer upserts a ghostwriter's fake definition
	SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error)

	// SubmitAnswerTitle sets an answer's display title during voting
	SubmitAnswerTitle(ctx context.Context, input *SubmitAnswerTitleInput) (*SubmitAnswerTitleOutput, error)

	// SubmitVote records a ghostwriter's vote
	SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error)

	// Unready clears a ghostwriter's ready flag
	Unready(ctx context.Context, input *UnreadyInput) (*UnreadyOutput, error)

	// PresentNext reveals the next answer and applies its point award
	PresentNext(ctx context.Context, input *PresentNextInput) (*PresentNextOutput, error)

	// StartScoreboard snapshots round deltas and shows the standings
	StartScoreboard(ctx context.Context, input *StartScoreboardInput) (*StartScoreboardOutput, error)

	// Close cancels every armed timer; used on process shutdown
	Close()
}
