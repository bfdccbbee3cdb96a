package models

// Phase represents the current phase of an active game
type Phase string

const (
	// PhaseDefine indicates ghostwriters are writing fake definitions
	PhaseDefine Phase = "define"

	// PhaseVote indicates ghostwriters are voting on the anonymized answers
	PhaseVote Phase = "vote"

	// PhasePresent indicates the anchor is revealing answers one by one
	PhasePresent Phase = "present"

	// PhaseScoreboard indicates the round standings are being shown
	PhaseScoreboard Phase = "scoreboard"
)
