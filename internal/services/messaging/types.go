package messaging

// ErrorKind represents the category of a rejected action
type ErrorKind string

const (
	// ErrorKindNotHost indicates a non-host tried to start the game
	ErrorKindNotHost ErrorKind = "not_host"

	// ErrorKindGameInProgress indicates a start request while a game is running
	ErrorKindGameInProgress ErrorKind = "game_in_progress"

	// ErrorKindNotAnchor indicates a non-anchor tried an anchor-only action
	ErrorKindNotAnchor ErrorKind = "not_anchor"

	// ErrorKindWrongPhase indicates an action sent in the wrong phase
	ErrorKindWrongPhase ErrorKind = "wrong_phase"
)

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Kind is the category of rejection
	Kind ErrorKind
}

// GetErrorMessageOutput contains the resulting message
type GetErrorMessageOutput struct {
	Message string
}

// GetGameAbortedMessageInput contains parameters for an abort message
type GetGameAbortedMessageInput struct {
	// AnchorName is the display name of the departed anchor
	AnchorName string
}

// GetGameAbortedMessageOutput contains the resulting message
type GetGameAbortedMessageOutput struct {
	Message string
}

// GetGameEndedMessageInput contains parameters for a game-over message
type GetGameEndedMessageInput struct {
	// WinnerName is the display name of the highest-scoring participant
	WinnerName string
}

// GetGameEndedMessageOutput contains the resulting message
type GetGameEndedMessageOutput struct {
	Message string
}
