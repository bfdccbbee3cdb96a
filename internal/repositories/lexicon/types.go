package lexicon

import "github.com/Mr-Jen/lexifine-server/internal/models"

type DrawInput struct {
	// Exclude lists terms already played this session
	Exclude []string
}

type DrawOutput struct {
	Entry *models.Entry
}

type SeedInput struct {
	Entries []*models.Entry
}
