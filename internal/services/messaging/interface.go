package messaging

import "context"

// Service is the interface for the messaging service. It turns game events
// into the human-readable text broadcast to a session.
type Service interface {
	// GetErrorMessage returns a user-facing message for a rejected action
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetGameAbortedMessage returns a message for an abnormally ended game
	GetGameAbortedMessage(ctx context.Context, input *GetGameAbortedMessageInput) (*GetGameAbortedMessageOutput, error)

	// GetGameEndedMessage returns a message for a normally completed game
	GetGameEndedMessage(ctx context.Context, input *GetGameEndedMessageInput) (*GetGameEndedMessageOutput, error)
}
