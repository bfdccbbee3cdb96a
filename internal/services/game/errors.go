package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInvalidSession is returned for an unknown session id
	ErrInvalidSession GameError = "invalid session"

	// ErrUnknownParticipant is returned when the actor is not in the session
	ErrUnknownParticipant GameError = "unknown participant"

	// ErrIllegalAction is returned when the phase or actor does not permit
	// the requested action; callers discard the action silently
	ErrIllegalAction GameError = "illegal action"

	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilSessionRepo   GameError = "session repository cannot be nil"
	ErrNilLexiconRepo   GameError = "lexicon repository cannot be nil"
	ErrNilMessaging     GameError = "messaging service cannot be nil"
	ErrNilNotifier      GameError = "notifier cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
	ErrNilRandom        GameError = "random source cannot be nil"
)
