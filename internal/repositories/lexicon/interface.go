package lexicon

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Mr-Jen/lexifine-server/internal/repositories/lexicon Repository

import (
	"context"
)

// Repository defines the interface for the term corpus. The engine treats
// it as a pure provider of {term, true definition} pairs.
type Repository interface {
	// Draw picks one entry, avoiding excluded terms on a best-effort basis
	Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error)

	// Count returns the number of entries in the corpus
	Count(ctx context.Context) (int, error)

	// Seed loads entries into the corpus
	Seed(ctx context.Context, input *SeedInput) error
}
