package game

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Mr-Jen/lexifine-server/internal/common/clock"
	"github.com/Mr-Jen/lexifine-server/internal/common/uuid"
	"github.com/Mr-Jen/lexifine-server/internal/models"
	"github.com/Mr-Jen/lexifine-server/internal/random"
	lexiconRepo "github.com/Mr-Jen/lexifine-server/internal/repositories/lexicon"
	sessionRepo "github.com/Mr-Jen/lexifine-server/internal/repositories/session"
	"github.com/Mr-Jen/lexifine-server/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	config      *Config
	sessionRepo sessionRepo.Repository
	lexiconRepo lexiconRepo.Repository
	messaging   messaging.Service
	notifier    Notifier
	clock       clock.Clock
	uuid        uuid.UUID
	random      *random.Source

	// mu serializes every inbound action and every fired timer. Session
	// state only ever changes inside one run-to-completion handler, which
	// is what makes the phase guards in the transitions airtight.
	mu     sync.Mutex
	timers map[string][]*countdown
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.LexiconRepo == nil {
		return nil, ErrNilLexiconRepo
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	// Fill in defaults for unset tuning values
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = 3
	}
	if cfg.DefineDuration == 0 {
		cfg.DefineDuration = 90 * time.Second
	}
	if cfg.VoteTailDuration == 0 {
		cfg.VoteTailDuration = 15 * time.Second
	}
	if cfg.ScoreboardDuration == 0 {
		cfg.ScoreboardDuration = 15 * time.Second
	}
	if cfg.FinalScoreboardDuration == 0 {
		cfg.FinalScoreboardDuration = 30 * time.Second
	}
	if cfg.RevealDelay == 0 {
		cfg.RevealDelay = 3500 * time.Millisecond
	}
	if cfg.TruthGuessPoints == 0 {
		cfg.TruthGuessPoints = 5
	}
	if cfg.FooledVotePoints == 0 {
		cfg.FooledVotePoints = 10
	}
	if cfg.DefaultAnswerText == "" {
		cfg.DefaultAnswerText = "No answer submitted."
	}

	return &service{
		config:      cfg,
		sessionRepo: cfg.SessionRepo,
		lexiconRepo: cfg.LexiconRepo,
		messaging:   cfg.Messaging,
		notifier:    cfg.Notifier,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
		random:      cfg.Random,
		timers:      make(map[string][]*countdown),
	}, nil
}

// CreateSession creates a new session with the caller as host
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ParticipantID == "" || input.Name == "" {
		return nil, errors.New("participant ID and name are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	sess := &models.Session{
		ID:     s.uuid.NewUUID(),
		HostID: input.ParticipantID,
		Participants: []*models.Participant{
			{
				ID:       input.ParticipantID,
				Name:     input.Name,
				JoinedAt: now,
			},
		},
		PendingLeaves: make(map[string]struct{}),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{
		SessionID: sess.ID,
		HostID:    sess.HostID,
	}, nil
}

// JoinSession adds a participant to an existing session
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.ParticipantID == "" || input.Name == "" {
		return nil, errors.New("participant ID and name are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	joined := &models.Participant{
		ID:       input.ParticipantID,
		Name:     input.Name,
		JoinedAt: now,
	}
	sess.Participants = append(sess.Participants, joined)
	sess.UpdatedAt = now

	// Everyone already present learns about the new member; the joiner
	// gets the roster back directly.
	others := make([]string, 0, len(sess.Participants)-1)
	for _, p := range sess.Participants {
		if p.ID != joined.ID {
			others = append(others, p.ID)
		}
	}
	s.notifier.Notify(others, EventJoinedLobby, JoinedLobbyPayload{
		Participant: ParticipantInfo{ID: joined.ID, Name: joined.Name},
	})

	return &JoinSessionOutput{
		HostID:         sess.HostID,
		Participants:   participantInfos(sess.Participants),
		GameInProgress: sess.Game != nil,
	}, nil
}

// Disconnect removes a participant: immediately while in the lobby,
// deferred to the scoreboard boundary mid-game, and with immediate game
// termination when the departing participant is the anchor.
func (s *service) Disconnect(ctx context.Context, input *DisconnectInput) (*DisconnectOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	p := sess.Participant(input.ParticipantID)
	if p == nil {
		return nil, ErrUnknownParticipant
	}

	if sess.InGame(p.ID) {
		if sess.Game.AnchorID == p.ID {
			// The round cannot proceed without its anchor.
			s.abortGame(ctx, sess, p)
			destroyed := s.removeParticipant(ctx, sess, p.ID)
			return &DisconnectOutput{SessionDestroyed: destroyed}, nil
		}

		sess.PendingLeaves[p.ID] = struct{}{}
		sess.UpdatedAt = s.clock.Now()
		return &DisconnectOutput{RemovalDeferred: true}, nil
	}

	destroyed := s.removeParticipant(ctx, sess, p.ID)
	return &DisconnectOutput{SessionDestroyed: destroyed}, nil
}

// SessionExists probes whether a session id is known
func (s *service) SessionExists(ctx context.Context, input *SessionExistsInput) (*SessionExistsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	exists, err := s.sessionRepo.SessionExists(ctx, &sessionRepo.SessionExistsInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return &SessionExistsOutput{Exists: exists}, nil
}

// CountSessions reports how many sessions are live.
func (s *service) CountSessions(ctx context.Context) (int, error) {
	return s.sessionRepo.CountSessions(ctx)
}

// Close cancels every armed timer; used on process shutdown
func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.timers {
		s.cancelTimers(id)
	}
}

// getSession maps a repository miss onto ErrInvalidSession.
func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		return nil, ErrInvalidSession
	}

	return sess, nil
}

// removeParticipant takes a participant out of the roster (and the game
// roster snapshot, when present), migrates the host role, and tears the
// session down once the roster is empty. Returns true if the session was
// destroyed. Callers hold s.mu.
func (s *service) removeParticipant(ctx context.Context, sess *models.Session, participantID string) bool {
	remaining := make([]*models.Participant, 0, len(sess.Participants))
	for _, p := range sess.Participants {
		if p.ID != participantID {
			remaining = append(remaining, p)
		}
	}
	sess.Participants = remaining
	delete(sess.PendingLeaves, participantID)

	if sess.Game != nil {
		players := make([]string, 0, len(sess.Game.PlayerIDs))
		for _, id := range sess.Game.PlayerIDs {
			if id != participantID {
				players = append(players, id)
			}
		}
		sess.Game.PlayerIDs = players
	}

	if len(sess.Participants) == 0 {
		s.cancelTimers(sess.ID)
		err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
			SessionID: sess.ID,
		})
		if err != nil {
			log.Printf("failed to delete empty session %s: %v", sess.ID, err)
		}
		return true
	}

	if sess.HostID == participantID {
		sess.HostID = sess.Participants[0].ID
	}

	sess.UpdatedAt = s.clock.Now()

	s.notifier.Notify(sess.ParticipantIDs(), EventLeaveLobby, LeaveLobbyPayload{
		ParticipantID: participantID,
		HostID:        sess.HostID,
	})

	return false
}

// flushPendingLeaves applies deferred removals. Invoked only at safe
// boundaries (scoreboard completion, game teardown) so per-round vote and
// answer bookkeeping never loses a referenced roster entry mid-round.
// Returns true if the session was destroyed. Callers hold s.mu.
func (s *service) flushPendingLeaves(ctx context.Context, sess *models.Session) bool {
	if len(sess.PendingLeaves) == 0 {
		return false
	}

	// Roster order keeps departure notifications deterministic.
	pending := make([]string, 0, len(sess.PendingLeaves))
	for _, p := range sess.Participants {
		if _, ok := sess.PendingLeaves[p.ID]; ok {
			pending = append(pending, p.ID)
		}
	}

	for _, id := range pending {
		if s.removeParticipant(ctx, sess, id) {
			return true
		}
	}

	return false
}

// notifyActionError broadcasts a human-readable rejection to the whole
// session. Only game-start and term-skip rejections get this treatment;
// everything else degrades to a silent no-op.
func (s *service) notifyActionError(ctx context.Context, sess *models.Session, kind messaging.ErrorKind) {
	out, err := s.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Kind: kind,
	})
	if err != nil {
		log.Printf("failed to build error message: %v", err)
		return
	}

	s.notifier.Notify(sess.ParticipantIDs(), EventError, out.Message)
}

func participantInfos(participants []*models.Participant) []ParticipantInfo {
	infos := make([]ParticipantInfo, 0, len(participants))
	for _, p := range participants {
		infos = append(infos, ParticipantInfo{
			ID:     p.ID,
			Name:   p.Name,
			Points: p.Points,
		})
	}
	return infos
}
