package game

import (
	"context"
	"errors"
	"log"

	"github.com/Mr-Jen/lexifine-server/internal/models"
	lexiconRepo "github.com/Mr-Jen/lexifine-server/internal/repositories/lexicon"
	"github.com/Mr-Jen/lexifine-server/internal/services/messaging"
)

// defineOpts controls how a define phase is entered: initial delays the
// phase announcement by the reveal delay, skip redraws the term without
// rotating the anchor or resetting round points.
type defineOpts struct {
	initial bool
	skip    bool
}

// StartGame begins a game in a session. Host only.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.HostID != input.ParticipantID {
		s.notifyActionError(ctx, sess, messaging.ErrorKindNotHost)
		return nil, ErrIllegalAction
	}

	if sess.Game != nil {
		s.notifyActionError(ctx, sess, messaging.ErrorKindGameInProgress)
		return nil, ErrIllegalAction
	}

	now := s.clock.Now()

	// The roster snapshot fixes who plays this game. Later joiners
	// spectate until the next one.
	sess.Game = &models.Game{
		MaxRounds: s.config.MaxRounds,
		PlayerIDs: sess.ParticipantIDs(),
		CreatedAt: now,
	}

	for _, p := range sess.Participants {
		p.Points = 0
		p.RoundPoints = 0
		p.Ready = false
		p.VoteAnswerID = ""
	}

	s.notifier.Notify(sess.Game.PlayerIDs, EventGameStarted, GameStartedPayload{
		MaxRounds:     sess.Game.MaxRounds,
		DefineSeconds: int(s.config.DefineDuration.Seconds()),
	})

	if err := s.beginDefinePhase(ctx, sess, defineOpts{initial: true}); err != nil {
		sess.Game = nil
		return nil, err
	}

	sess.UpdatedAt = now

	return &StartGameOutput{Success: true}, nil
}

// SkipTerm redraws the round's term. Anchor only, define phase only.
func (s *service) SkipTerm(ctx context.Context, input *SkipTermInput) (*SkipTermOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	game := sess.Game
	if game == nil || game.Phase != models.PhaseDefine {
		s.notifyActionError(ctx, sess, messaging.ErrorKindWrongPhase)
		return nil, ErrIllegalAction
	}

	if game.AnchorID != input.ParticipantID {
		s.notifyActionError(ctx, sess, messaging.ErrorKindNotAnchor)
		return nil, ErrIllegalAction
	}

	if err := s.beginDefinePhase(ctx, sess, defineOpts{skip: true}); err != nil {
		return nil, err
	}

	return &SkipTermOutput{Term: game.Term}, nil
}

// SubmitAnswer records (or overwrites) a ghostwriter's fake definition
func (s *service) SubmitAnswer(ctx context.Context, input *SubmitAnswerInput) (*SubmitAnswerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	game := sess.Game
	if game == nil || game.Phase != models.PhaseDefine {
		return nil, ErrIllegalAction
	}

	p := sess.Participant(input.ParticipantID)
	if p == nil || !sess.InGame(p.ID) {
		return nil, ErrUnknownParticipant
	}

	if game.AnchorID == p.ID {
		return nil, ErrIllegalAction
	}

	ans := game.AnswerByAuthor(p.ID)
	if ans != nil {
		ans.Text = input.Text
	} else {
		ans = &models.Answer{
			ID:       s.uuid.NewUUID(),
			Text:     input.Text,
			AuthorID: p.ID,
		}
		game.Answers = append(game.Answers, ans)
	}

	advanced := false
	if input.LockIn {
		p.Ready = true
		if s.unreadyGhostwriters(sess) == 0 {
			s.notifier.Notify(game.PlayerIDs, EventTimerEnd, nil)
			s.beginVotePhase(sess)
			advanced = true
		} else {
			s.notifier.Notify(game.PlayerIDs, EventReady, ReadyPayload{ParticipantID: p.ID})
		}
	}

	return &SubmitAnswerOutput{
		AnswerID:      ans.ID,
		PhaseAdvanced: advanced,
	}, nil
}

// SubmitAnswerTitle attaches the anchor's title to an answer during voting
func (s *service) SubmitAnswerTitle(ctx context.Context, input *SubmitAnswerTitleInput) (*SubmitAnswerTitleOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	game := sess.Game
	if game == nil || game.Phase != models.PhaseVote {
		return nil, ErrIllegalAction
	}

	if game.AnchorID != input.ParticipantID {
		return nil, ErrIllegalAction
	}

	ans := game.Answer(input.AnswerID)
	if ans == nil {
		return nil, ErrIllegalAction
	}

	ans.Title = input.Title

	s.notifier.Notify(game.PlayerIDs, EventAnswerTitle, AnswerTitlePayload{
		AnswerID: ans.ID,
		Title:    ans.Title,
	})

	return &SubmitAnswerTitleOutput{Success: true}, nil
}

// SubmitVote records a ghostwriter's vote for an answer
func (s *service) SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	game := sess.Game
	if game == nil || game.Phase != models.PhaseVote {
		return nil, ErrIllegalAction
	}

	p := sess.Participant(input.ParticipantID)
	if p == nil || !sess.InGame(p.ID) {
		return nil, ErrUnknownParticipant
	}

	if game.AnchorID == p.ID {
		return nil, ErrIllegalAction
	}

	ans := game.Answer(input.AnswerID)
	if ans == nil {
		return nil, ErrIllegalAction
	}

	p.VoteAnswerID = ans.ID

	advanced := false
	if input.LockIn {
		p.Ready = true
		switch s.unreadyGhostwriters(sess) {
		case 0:
			s.notifier.Notify(game.PlayerIDs, EventTimerEnd, nil)
			s.beginPresentPhase(sess)
			advanced = true
		case 1:
			// One straggler left: give them a short tail instead of an
			// open-ended wait.
			s.cancelTimers(sess.ID)
			s.armTimer(sess, s.config.VoteTailDuration, true, s.beginPresentPhase)
			s.notifier.Notify(game.PlayerIDs, EventReady, ReadyPayload{ParticipantID: p.ID})
		default:
			s.notifier.Notify(game.PlayerIDs, EventReady, ReadyPayload{ParticipantID: p.ID})
		}
	}

	return &SubmitVoteOutput{PhaseAdvanced: advanced}, nil
}

// Unready clears a ghostwriter's lock-in during the vote or present phase
func (s *service) Unready(ctx context.Context, input *UnreadyInput) (*UnreadyOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	game := sess.Game
	if game == nil || (game.Phase != models.PhaseVote && game.Phase != models.PhasePresent) {
		return nil, ErrIllegalAction
	}

	p := sess.Participant(input.ParticipantID)
	if p == nil || !sess.InGame(p.ID) {
		return nil, ErrUnknownParticipant
	}

	if game.AnchorID == p.ID {
		return nil, ErrIllegalAction
	}

	p.Ready = false

	s.notifier.Notify(game.PlayerIDs, EventUnready, ReadyPayload{ParticipantID: p.ID})

	return &UnreadyOutput{Success: true}, nil
}

// PresentNext reveals the next answer and applies its point award.
// Anchor only, present phase only.
func (s *service) PresentNext(ctx context.Context, input *PresentNextInput) (*PresentNextOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	game := sess.Game
	if game == nil || game.Phase != models.PhasePresent {
		return nil, ErrIllegalAction
	}

	if game.AnchorID != input.ParticipantID {
		return nil, ErrIllegalAction
	}

	order := s.revealOrder(game)
	if game.PresentIndex+1 >= len(order) {
		return nil, ErrIllegalAction
	}

	game.PresentIndex++
	payload := s.awardForReveal(sess, order[game.PresentIndex])

	s.notifier.Notify(game.PlayerIDs, EventPresentNext, payload)

	return &PresentNextOutput{Revealed: &payload}, nil
}

// StartScoreboard moves the round into the scoreboard phase. Anchor only.
func (s *service) StartScoreboard(ctx context.Context, input *StartScoreboardInput) (*StartScoreboardOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	game := sess.Game
	if game == nil || game.Phase != models.PhasePresent {
		return nil, ErrIllegalAction
	}

	if game.AnchorID != input.ParticipantID {
		return nil, ErrIllegalAction
	}

	s.cancelTimers(sess.ID)

	game.Phase = models.PhaseScoreboard
	game.PhaseStartedAt = s.clock.Now()

	// Final is decided now, against the current roster snapshot. A pending
	// leave flushed at the deadline never retroactively ends the game.
	final := game.Round >= game.MaxRounds &&
		len(game.PlayerIDs) > 0 &&
		game.AnchorID == game.PlayerIDs[len(game.PlayerIDs)-1]

	s.notifier.Notify(game.PlayerIDs, EventStartScoreboard, ScoreboardPayload{
		Standings: s.standings(sess),
		Final:     final,
	})

	duration := s.config.ScoreboardDuration
	if final {
		duration = s.config.FinalScoreboardDuration
	}

	s.armTimer(sess, duration, true, func(sess *models.Session) {
		s.finishScoreboard(context.Background(), sess, final)
	})

	return &StartScoreboardOutput{Final: final}, nil
}

// beginDefinePhase enters (or re-enters, on skip) the define phase.
// Callers hold s.mu and guarantee sess.Game is set.
func (s *service) beginDefinePhase(ctx context.Context, sess *models.Session, opts defineOpts) error {
	game := sess.Game

	// Draw before touching timers or game state so a lexicon failure
	// leaves the current phase, and its deadline, intact.
	drawn, err := s.lexiconRepo.Draw(ctx, &lexiconRepo.DrawInput{
		Exclude: game.UsedTerms,
	})
	if err != nil {
		log.Printf("failed to draw a term for session %s: %v", sess.ID, err)
		return err
	}

	s.cancelTimers(sess.ID)

	if !opts.skip {
		s.rotateAnchor(game)
	}

	game.Term = drawn.Entry.Term
	game.TrueDefinition = drawn.Entry.Definition
	game.UsedTerms = append(game.UsedTerms, game.Term)

	// The true definition enters the pool like any other answer
	game.Answers = []*models.Answer{
		{
			ID:       s.uuid.NewUUID(),
			Text:     game.TrueDefinition,
			AuthorID: models.SystemAuthorID,
		},
	}
	game.PresentIndex = -1
	game.Phase = models.PhaseDefine
	game.PhaseStartedAt = s.clock.Now()

	s.resetReadyFlags(sess)
	for _, id := range game.PlayerIDs {
		p := sess.Participant(id)
		if p == nil {
			continue
		}
		p.VoteAnswerID = ""
		if !opts.skip {
			p.RoundPoints = 0
		}
	}

	payload := StartDefinePayload{
		Term:           game.Term,
		AnchorID:       game.AnchorID,
		Round:          game.Round,
		PhaseStartedAt: game.PhaseStartedAt.UnixMilli(),
		Skip:           opts.skip,
	}

	if opts.initial {
		// Give clients a beat to show the game intro before round one.
		s.armTimer(sess, s.config.RevealDelay, false, func(sess *models.Session) {
			s.notifier.Notify(sess.Game.PlayerIDs, EventStartDefine, payload)
		})
	} else {
		s.notifier.Notify(game.PlayerIDs, EventStartDefine, payload)
	}

	s.armTimer(sess, s.config.DefineDuration, true, s.beginVotePhase)

	return nil
}

// rotateAnchor advances the anchor role through the game roster snapshot.
// Wrapping past the end starts the next round.
func (s *service) rotateAnchor(game *models.Game) {
	if game.AnchorID == "" {
		game.AnchorID = game.PlayerIDs[0]
		game.Round = 1
		return
	}

	idx := 0
	for i, id := range game.PlayerIDs {
		if id == game.AnchorID {
			idx = i
			break
		}
	}

	if idx+1 >= len(game.PlayerIDs) {
		game.AnchorID = game.PlayerIDs[0]
		game.Round++
		return
	}

	game.AnchorID = game.PlayerIDs[idx+1]
}

// beginVotePhase is the define->vote transition; both trigger paths (all
// ghostwriters locked in, define deadline) funnel here and the phase guard
// makes the second arrival a no-op.
func (s *service) beginVotePhase(sess *models.Session) {
	game := sess.Game
	if game == nil || game.Phase != models.PhaseDefine {
		return
	}

	s.cancelTimers(sess.ID)

	s.fillMissingAnswers(sess)
	s.shuffleAnswers(game)

	game.Phase = models.PhaseVote
	game.PhaseStartedAt = s.clock.Now()

	s.resetReadyFlags(sess)

	s.notifyVotePhase(sess)

	// Every ghostwriter may already be a pending leave; without a deadline
	// the round would hang, so fall back to the vote tail.
	if s.unreadyGhostwriters(sess) == 0 {
		s.armTimer(sess, s.config.VoteTailDuration, true, s.beginPresentPhase)
	}
}

// notifyVotePhase fans out the vote-phase payloads. Ghostwriters only see
// the shuffled answer ids plus which one is their own; authorship stays
// hidden from them. The anchor moderates and therefore sees everything.
func (s *service) notifyVotePhase(sess *models.Session) {
	game := sess.Game

	ids := make([]string, 0, len(game.Answers))
	for _, ans := range game.Answers {
		ids = append(ids, ans.ID)
	}

	for _, id := range game.PlayerIDs {
		if id == game.AnchorID {
			continue
		}

		own := ""
		if ans := game.AnswerByAuthor(id); ans != nil {
			own = ans.ID
		}

		s.notifier.Notify([]string{id}, EventStartVote, StartVotePayload{
			MyAnswerID: own,
			AnswerIDs:  ids,
		})
	}

	answers := make([]AnswerInfo, 0, len(game.Answers))
	for _, ans := range game.Answers {
		answers = append(answers, AnswerInfo{
			ID:       ans.ID,
			Text:     ans.Text,
			Title:    ans.Title,
			AuthorID: ans.AuthorID,
		})
	}

	s.notifier.Notify([]string{game.AnchorID}, EventStartVote, StartVotePayload{
		Answers: answers,
	})
}

// beginPresentPhase is the vote->present transition, idempotent via its
// phase guard.
func (s *service) beginPresentPhase(sess *models.Session) {
	game := sess.Game
	if game == nil || game.Phase != models.PhaseVote {
		return
	}

	s.cancelTimers(sess.ID)

	game.Phase = models.PhasePresent
	game.PhaseStartedAt = s.clock.Now()
	game.PresentIndex = -1

	s.resetReadyFlags(sess)

	s.notifier.Notify(game.PlayerIDs, EventStartPresent, nil)
}

// finishScoreboard runs at the scoreboard deadline: flush deferred leaves,
// then either end the game or rotate into the next define phase.
func (s *service) finishScoreboard(ctx context.Context, sess *models.Session, final bool) {
	game := sess.Game
	if game == nil || game.Phase != models.PhaseScoreboard {
		return
	}

	if s.flushPendingLeaves(ctx, sess) {
		return
	}

	if final || len(game.PlayerIDs) < 2 {
		s.endGame(ctx, sess)
		return
	}

	if err := s.beginDefinePhase(ctx, sess, defineOpts{}); err != nil {
		s.endGame(ctx, sess)
	}
}

// endGame concludes a game normally. The session survives for a rematch.
func (s *service) endGame(ctx context.Context, sess *models.Session) {
	s.cancelTimers(sess.ID)

	standings := s.standings(sess)

	message := ""
	if len(standings) > 0 {
		out, err := s.messaging.GetGameEndedMessage(ctx, &messaging.GetGameEndedMessageInput{
			WinnerName: standings[0].Name,
		})
		if err != nil {
			log.Printf("failed to build game-ended message: %v", err)
		} else {
			message = out.Message
		}
	}

	sess.Game = nil
	sess.UpdatedAt = s.clock.Now()

	s.notifier.Notify(sess.ParticipantIDs(), EventGameEnded, GameEndedPayload{
		Standings: standings,
		Message:   message,
	})

	s.flushPendingLeaves(ctx, sess)
}

// abortGame tears a game down because its anchor left mid-round.
// Callers hold s.mu.
func (s *service) abortGame(ctx context.Context, sess *models.Session, anchor *models.Participant) {
	s.cancelTimers(sess.ID)

	sess.Game = nil
	sess.UpdatedAt = s.clock.Now()

	s.notifier.Notify(sess.ParticipantIDs(), EventGameEnded, GameEndedPayload{})

	out, err := s.messaging.GetGameAbortedMessage(ctx, &messaging.GetGameAbortedMessageInput{
		AnchorName: anchor.Name,
	})
	if err != nil {
		log.Printf("failed to build game-aborted message: %v", err)
	} else {
		s.notifier.Notify(sess.ParticipantIDs(), EventError, out.Message)
	}

	s.flushPendingLeaves(ctx, sess)
}

// resetReadyFlags clears the lock-in state of every game participant;
// every phase entry goes through this so no phase inherits stale readies.
func (s *service) resetReadyFlags(sess *models.Session) {
	for _, id := range sess.Game.PlayerIDs {
		if p := sess.Participant(id); p != nil {
			p.Ready = false
		}
	}
}

// unreadyGhostwriters counts game-roster non-anchor participants who have
// not locked in. Pending leaves are excluded: a participant queued for
// removal can no longer act and must not stall the phase.
func (s *service) unreadyGhostwriters(sess *models.Session) int {
	game := sess.Game

	count := 0
	for _, id := range game.PlayerIDs {
		if id == game.AnchorID {
			continue
		}
		if _, leaving := sess.PendingLeaves[id]; leaving {
			continue
		}
		p := sess.Participant(id)
		if p != nil && !p.Ready {
			count++
		}
	}

	return count
}
