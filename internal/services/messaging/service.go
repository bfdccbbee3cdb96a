package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Optional seed for testing
	Seed int64
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var seed int64
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetErrorMessage returns a user-facing message for a rejected action
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	var messages []string

	switch input.Kind {
	case ErrorKindNotHost:
		messages = []string{
			"Only the lobby host can start a game.",
			"Patience! The host decides when the game begins.",
		}
	case ErrorKindGameInProgress:
		messages = []string{
			"A game is already running. Finish it first!",
			"One game at a time, please.",
		}
	case ErrorKindNotAnchor:
		messages = []string{
			"Only this round's anchor can do that.",
			"Hands off! That button belongs to the anchor.",
		}
	case ErrorKindWrongPhase:
		messages = []string{
			"That action doesn't fit the current phase.",
			"Too late (or too early) for that.",
		}
	default:
		messages = []string{
			"That didn't work. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetGameAbortedMessage returns a message for an abnormally ended game
func (s *service) GetGameAbortedMessage(ctx context.Context, input *GetGameAbortedMessageInput) (*GetGameAbortedMessageOutput, error) {
	name := "The anchor"
	if input != nil && input.AnchorName != "" {
		name = input.AnchorName
	}

	messages := []string{
		"Boo... %s left mid-round. The game has been cancelled.",
		"%s walked out on us, so this game is over.",
		"No anchor, no round: %s left and the game was cancelled.",
	}

	return &GetGameAbortedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), name),
	}, nil
}

// GetGameEndedMessage returns a message for a normally completed game
func (s *service) GetGameEndedMessage(ctx context.Context, input *GetGameEndedMessageInput) (*GetGameEndedMessageOutput, error) {
	if input == nil || input.WinnerName == "" {
		return &GetGameEndedMessageOutput{
			Message: "That's a wrap! Thanks for playing.",
		}, nil
	}

	messages := []string{
		"That's a wrap! %s takes the crown.",
		"Game over. %s fooled you all.",
		"The dictionaries close, and %s walks away the winner.",
	}

	return &GetGameEndedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.WinnerName),
	}, nil
}

func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}
