package game

import (
	"context"
	"sync"
	"time"

	"github.com/Mr-Jen/lexifine-server/internal/models"
	sessionRepo "github.com/Mr-Jen/lexifine-server/internal/repositories/session"
)

// countdown is one armed phase deadline. It is cancelled either explicitly
// (phase transition, session teardown) or implicitly by its phase guard:
// when it fires it re-checks that the session still exists and is still in
// the phase it was armed for, so a stale timer is always a no-op.
type countdown struct {
	sessionID string
	phase     models.Phase
	stop      chan struct{}
	once      sync.Once
}

func (c *countdown) cancel() {
	c.once.Do(func() {
		close(c.stop)
	})
}

func (c *countdown) cancelled() bool {
	select {
	case <-c.stop:
		return true
	default:
		return false
	}
}

// armTimer schedules onFire after d. When ticks is true the countdown
// broadcasts the remaining seconds to the game roster once per second and
// announces timer-end before firing. Callers hold s.mu; the countdown is
// bound to the session's current phase.
func (s *service) armTimer(sess *models.Session, d time.Duration, ticks bool, onFire func(sess *models.Session)) {
	c := &countdown{
		sessionID: sess.ID,
		phase:     sess.Game.Phase,
		stop:      make(chan struct{}),
	}
	s.timers[sess.ID] = append(s.timers[sess.ID], c)

	go s.runCountdown(c, d, ticks, onFire)
}

func (s *service) runCountdown(c *countdown, d time.Duration, ticks bool, onFire func(sess *models.Session)) {
	if !ticks {
		select {
		case <-time.After(d):
			s.fire(c, false, onFire)
		case <-c.stop:
		}
		return
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	deadline := time.After(d)
	remaining := int(d.Round(time.Second) / time.Second)

	for {
		select {
		case <-ticker.C:
			remaining--
			if remaining > 0 {
				s.tick(c, remaining)
			}
		case <-deadline:
			s.fire(c, true, onFire)
			return
		case <-c.stop:
			return
		}
	}
}

// tick broadcasts the remaining seconds, guarded the same way as fire.
func (s *service) tick(c *countdown, remaining int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.countdownSession(c)
	if sess == nil {
		return
	}

	s.notifier.Notify(sess.Game.PlayerIDs, EventTimeLeft, remaining)
}

// fire runs the deadline handler under the engine lock, after re-checking
// that the countdown is still live and its phase still current.
func (s *service) fire(c *countdown, announce bool, onFire func(sess *models.Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.countdownSession(c)
	if sess == nil {
		return
	}

	c.cancel()
	s.removeTimer(c)

	if announce {
		s.notifier.Notify(sess.Game.PlayerIDs, EventTimerEnd, nil)
	}

	onFire(sess)
}

// countdownSession resolves a live countdown to its session, or nil when
// the countdown was cancelled, the session is gone, the game ended, or the
// phase moved on. Callers hold s.mu.
func (s *service) countdownSession(c *countdown) *models.Session {
	if c.cancelled() {
		return nil
	}

	sess, err := s.sessionRepo.GetSession(context.Background(), &sessionRepo.GetSessionInput{
		SessionID: c.sessionID,
	})
	if err != nil {
		return nil
	}

	if sess.Game == nil || sess.Game.Phase != c.phase {
		return nil
	}

	return sess
}

// cancelTimers stops every countdown armed for a session. Callers hold s.mu.
func (s *service) cancelTimers(sessionID string) {
	for _, c := range s.timers[sessionID] {
		c.cancel()
	}
	delete(s.timers, sessionID)
}

func (s *service) removeTimer(c *countdown) {
	live := s.timers[c.sessionID][:0]
	for _, t := range s.timers[c.sessionID] {
		if t != c {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		delete(s.timers, c.sessionID)
	} else {
		s.timers[c.sessionID] = live
	}
}
