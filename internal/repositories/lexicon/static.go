package lexicon

import (
	"context"
	"errors"
	"sync"

	"github.com/Mr-Jen/lexifine-server/internal/models"
	"github.com/Mr-Jen/lexifine-server/internal/random"
)

// staticRepository implements the Repository interface over an in-memory
// corpus. It is the default when no Redis address is configured.
type staticRepository struct {
	mu      sync.RWMutex
	entries []*models.Entry
	random  *random.Source
}

// StaticConfig holds configuration for the static lexicon repository
type StaticConfig struct {
	// Entries is the initial corpus; defaults to the embedded corpus
	Entries []*models.Entry

	// Random source used to pick entries
	Random *random.Source
}

// NewStatic creates a lexicon repository backed by an in-memory corpus
func NewStatic(cfg *StaticConfig) (*staticRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	entries := cfg.Entries
	if entries == nil {
		entries = Corpus()
	}

	return &staticRepository{
		entries: entries,
		random:  cfg.Random,
	}, nil
}

// Draw picks one entry, avoiding excluded terms when possible
func (r *staticRepository) Draw(_ context.Context, input *DrawInput) (*DrawOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return nil, ErrEmptyLexicon
	}

	var exclude map[string]struct{}
	if input != nil && len(input.Exclude) > 0 {
		exclude = make(map[string]struct{}, len(input.Exclude))
		for _, t := range input.Exclude {
			exclude[t] = struct{}{}
		}
	}

	candidates := r.entries
	if exclude != nil {
		fresh := make([]*models.Entry, 0, len(r.entries))
		for _, e := range r.entries {
			if _, used := exclude[e.Term]; !used {
				fresh = append(fresh, e)
			}
		}
		if len(fresh) > 0 {
			candidates = fresh
		}
	}

	picked := candidates[r.random.Intn(len(candidates))]

	// Copy so callers cannot mutate the corpus.
	entry := *picked

	return &DrawOutput{Entry: &entry}, nil
}

// Count returns the number of entries in the corpus
func (r *staticRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries), nil
}

// Seed appends entries to the corpus
func (r *staticRepository) Seed(_ context.Context, input *SeedInput) error {
	if input == nil || len(input.Entries) == 0 {
		return errors.New("input and entries cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range input.Entries {
		if entry.Term == "" || entry.Definition == "" {
			return errors.New("entries must have a term and a definition")
		}
		r.entries = append(r.entries, entry)
	}

	return nil
}
