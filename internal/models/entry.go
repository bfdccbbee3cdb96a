package models

// Entry represents one lexicon entry: an obscure term and its true definition
type Entry struct {
	// Term is the prompt shown to all players
	Term string

	// Definition is the true definition, seeded as the system answer
	Definition string
}
