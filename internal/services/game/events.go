package game

// Notifier delivers outbound events to specific participants. Delivery is
// best-effort and fire-and-forget; the engine never waits on it.
type Notifier interface {
	Notify(participantIDs []string, event string, payload any)
}

// Outbound event names
const (
	EventJoinedLobby     = "join-lobby"
	EventLeaveLobby      = "leave-lobby"
	EventGameStarted     = "init-game"
	EventStartDefine     = "start-define-phase"
	EventReady           = "ready"
	EventUnready         = "unready"
	EventStartVote       = "start-vote-phase"
	EventAnswerTitle     = "answer-title"
	EventStartPresent    = "start-present-phase"
	EventPresentNext     = "present-next"
	EventStartScoreboard = "start-scoreboard-phase"
	EventGameEnded       = "end-game"
	EventTimeLeft        = "time-left"
	EventTimerEnd        = "timer-end"
	EventError           = "error"
)

// ParticipantInfo is the public view of a roster entry
type ParticipantInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// JoinedLobbyPayload is broadcast to existing members when someone joins
type JoinedLobbyPayload struct {
	Participant ParticipantInfo `json:"participant"`
}

// LeaveLobbyPayload is broadcast when a participant is removed
type LeaveLobbyPayload struct {
	ParticipantID string `json:"participantId"`
	HostID        string `json:"hostId"`
}

// GameStartedPayload announces a new game and its round settings
type GameStartedPayload struct {
	MaxRounds     int `json:"maxRounds"`
	DefineSeconds int `json:"defineSeconds"`
}

// StartDefinePayload announces the define phase of a round
type StartDefinePayload struct {
	Term           string `json:"term"`
	AnchorID       string `json:"anchorId"`
	Round          int    `json:"round"`
	PhaseStartedAt int64  `json:"phaseStartedAt"`
	Skip           bool   `json:"skip,omitempty"`
}

// ReadyPayload marks a participant as locked in (or no longer locked in)
type ReadyPayload struct {
	ParticipantID string `json:"participantId"`
}

// AnswerInfo is the anchor's view of an answer during voting
type AnswerInfo struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Title    string `json:"title,omitempty"`
	AuthorID string `json:"authorId"`
}

// StartVotePayload announces the vote phase. Voters only receive the
// anonymized answer ids (plus their own), the anchor receives authorship.
type StartVotePayload struct {
	MyAnswerID string       `json:"myAnswerId,omitempty"`
	AnswerIDs  []string     `json:"answerIds,omitempty"`
	Answers    []AnswerInfo `json:"answers,omitempty"`
}

// AnswerTitlePayload broadcasts an anchor-assigned answer title
type AnswerTitlePayload struct {
	AnswerID string `json:"answerId"`
	Title    string `json:"title"`
}

// PresentNextPayload reveals one answer and its point award
type PresentNextPayload struct {
	AnswerID      string   `json:"answerId"`
	Text          string   `json:"text"`
	AuthorID      string   `json:"authorId"`
	AuthorName    string   `json:"authorName,omitempty"`
	IsTrueAnswer  bool     `json:"isTrueAnswer"`
	VoterIDs      []string `json:"voterIds"`
	PointsAwarded int      `json:"pointsAwarded"`
}

// Standing is one scoreboard row
type Standing struct {
	ParticipantID string `json:"participantId"`
	Name          string `json:"name"`
	Points        int    `json:"points"`
	RoundPoints   int    `json:"roundPoints"`
}

// ScoreboardPayload announces the scoreboard phase
type ScoreboardPayload struct {
	Standings []Standing `json:"standings"`
	Final     bool       `json:"final"`
}

// GameEndedPayload announces the end of a game, normal or aborted
type GameEndedPayload struct {
	Standings []Standing `json:"standings,omitempty"`
	Message   string     `json:"message,omitempty"`
}
