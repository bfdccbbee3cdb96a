package game

import (
	"sort"

	"github.com/Mr-Jen/lexifine-server/internal/models"
)

// fillMissingAnswers gives every ghostwriter an answer before voting, so
// vote payloads and the reveal order never have holes.
func (s *service) fillMissingAnswers(sess *models.Session) {
	game := sess.Game

	for _, id := range game.PlayerIDs {
		if id == game.AnchorID {
			continue
		}
		if game.AnswerByAuthor(id) != nil {
			continue
		}
		game.Answers = append(game.Answers, &models.Answer{
			ID:       s.uuid.NewUUID(),
			Text:     s.config.DefaultAnswerText,
			AuthorID: id,
		})
	}
}

// shuffleAnswers randomizes answer order so the pool carries no hint of
// submission order or authorship.
func (s *service) shuffleAnswers(game *models.Game) {
	shuffled := make([]*models.Answer, len(game.Answers))
	for i, j := range s.random.Perm(len(game.Answers)) {
		shuffled[i] = game.Answers[j]
	}
	game.Answers = shuffled
}

// revealOrder lists answers the way the anchor walks through them:
// ghostwriter answers in roster order, the true definition last.
func (s *service) revealOrder(game *models.Game) []*models.Answer {
	order := make([]*models.Answer, 0, len(game.Answers))
	for _, id := range game.PlayerIDs {
		if id == game.AnchorID {
			continue
		}
		if ans := game.AnswerByAuthor(id); ans != nil {
			order = append(order, ans)
		}
	}

	for _, ans := range game.Answers {
		if ans.IsSystem() {
			order = append(order, ans)
		}
	}

	return order
}

// awardForReveal applies the points for one revealed answer. Votes on the
// true definition reward the voters; votes on a fake reward its author.
func (s *service) awardForReveal(sess *models.Session, ans *models.Answer) PresentNextPayload {
	game := sess.Game

	voterIDs := make([]string, 0)
	for _, id := range game.PlayerIDs {
		if id == game.AnchorID {
			continue
		}
		p := sess.Participant(id)
		if p != nil && p.VoteAnswerID == ans.ID {
			voterIDs = append(voterIDs, id)
		}
	}

	payload := PresentNextPayload{
		AnswerID:     ans.ID,
		Text:         ans.Text,
		AuthorID:     ans.AuthorID,
		IsTrueAnswer: ans.IsSystem(),
		VoterIDs:     voterIDs,
	}

	if ans.IsSystem() {
		for _, id := range voterIDs {
			if p := sess.Participant(id); p != nil {
				p.Points += s.config.TruthGuessPoints
				p.RoundPoints += s.config.TruthGuessPoints
			}
		}
		payload.PointsAwarded = s.config.TruthGuessPoints
		return payload
	}

	if author := sess.Participant(ans.AuthorID); author != nil {
		payload.AuthorName = author.Name
		awarded := s.config.FooledVotePoints * len(voterIDs)
		author.Points += awarded
		author.RoundPoints += awarded
		payload.PointsAwarded = awarded
	}

	return payload
}

// standings ranks the game roster by total points, high to low. Ties keep
// roster order.
func (s *service) standings(sess *models.Session) []Standing {
	game := sess.Game

	standings := make([]Standing, 0, len(game.PlayerIDs))
	for _, id := range game.PlayerIDs {
		p := sess.Participant(id)
		if p == nil {
			continue
		}
		standings = append(standings, Standing{
			ParticipantID: p.ID,
			Name:          p.Name,
			Points:        p.Points,
			RoundPoints:   p.RoundPoints,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Points > standings[j].Points
	})

	return standings
}
