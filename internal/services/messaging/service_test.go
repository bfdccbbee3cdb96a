package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type messagingTestSuite struct {
	suite.Suite

	ctx     context.Context
	service Service
}

func TestMessagingSuite(t *testing.T) {
	suite.Run(t, new(messagingTestSuite))
}

func (s *messagingTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 7})
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.service = svc
}

func (s *messagingTestSuite) TestErrorMessagesCoverAllKinds() {
	kinds := []ErrorKind{
		ErrorKindNotHost,
		ErrorKindGameInProgress,
		ErrorKindNotAnchor,
		ErrorKindWrongPhase,
	}

	for _, kind := range kinds {
		out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Kind: kind})
		s.Require().NoError(err, "kind %s", kind)
		s.NotEmpty(out.Message)
	}
}

func (s *messagingTestSuite) TestUnknownErrorKindFallsBack() {
	out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Kind: ErrorKind("bogus")})
	s.Require().NoError(err)
	s.NotEmpty(out.Message)
}

func (s *messagingTestSuite) TestGameAbortedMessageNamesAnchor() {
	out, err := s.service.GetGameAbortedMessage(s.ctx, &GetGameAbortedMessageInput{
		AnchorName: "Alice",
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "Alice")
}

func (s *messagingTestSuite) TestGameEndedMessageNamesWinner() {
	out, err := s.service.GetGameEndedMessage(s.ctx, &GetGameEndedMessageInput{
		WinnerName: "Bob",
	})
	s.Require().NoError(err)
	s.Contains(out.Message, "Bob")
}
