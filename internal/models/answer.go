package models

// SystemAuthorID is the sentinel author id for the true definition
// seeded by the game itself.
const SystemAuthorID = "game"

// Answer represents one submitted, default-filled, or system-provided
// response to the round's prompt
type Answer struct {
	// ID is the unique identifier for the answer
	ID string

	// Text is the definition text shown to voters
	Text string

	// Title is an optional display title the anchor assigns during voting
	Title string

	// AuthorID is the participant who wrote the answer, or SystemAuthorID
	AuthorID string
}

// IsSystem reports whether this is the true definition.
func (a *Answer) IsSystem() bool {
	return a.AuthorID == SystemAuthorID
}
