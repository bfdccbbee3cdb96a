package lexicon

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Mr-Jen/lexifine-server/internal/models"
	"github.com/Mr-Jen/lexifine-server/internal/random"
)

const (
	// Key prefixes for Redis
	termSetKey    = "lexicon:terms"
	termKeyPrefix = "lexicon:term:"
)

// ErrEmptyLexicon is returned when the corpus has no entries
var ErrEmptyLexicon = errors.New("lexicon is empty")

// Config holds configuration for the Redis lexicon repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Random source used to pick entries
	Random *random.Source
}

// redisRepository implements the Repository interface using Redis, for
// deployments that share one corpus across processes and restarts
type redisRepository struct {
	client *redis.Client
	random *random.Source
}

// NewRedis creates a new Redis-backed lexicon repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if cfg.Random == nil {
		return nil, errors.New("random source cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		random: cfg.Random,
	}, nil
}

// Draw picks one entry, avoiding excluded terms when possible
func (r *redisRepository) Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error) {
	terms, err := r.client.SMembers(ctx, termSetKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list terms: %w", err)
	}

	if len(terms) == 0 {
		return nil, ErrEmptyLexicon
	}

	var exclude map[string]struct{}
	if input != nil && len(input.Exclude) > 0 {
		exclude = make(map[string]struct{}, len(input.Exclude))
		for _, t := range input.Exclude {
			exclude[t] = struct{}{}
		}
	}

	candidates := terms
	if exclude != nil {
		fresh := make([]string, 0, len(terms))
		for _, t := range terms {
			if _, used := exclude[t]; !used {
				fresh = append(fresh, t)
			}
		}
		// Every term played already: fall back to repeats.
		if len(fresh) > 0 {
			candidates = fresh
		}
	}

	term := candidates[r.random.Intn(len(candidates))]

	definition, err := r.client.Get(ctx, termKeyPrefix+term).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get definition for %q: %w", term, err)
	}

	return &DrawOutput{
		Entry: &models.Entry{
			Term:       term,
			Definition: definition,
		},
	}, nil
}

// Count returns the number of entries in the corpus
func (r *redisRepository) Count(ctx context.Context) (int, error) {
	count, err := r.client.SCard(ctx, termSetKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count terms: %w", err)
	}

	return int(count), nil
}

// Seed loads entries into the corpus
func (r *redisRepository) Seed(ctx context.Context, input *SeedInput) error {
	if input == nil || len(input.Entries) == 0 {
		return errors.New("input and entries cannot be empty")
	}

	pipe := r.client.Pipeline()

	for _, entry := range input.Entries {
		if entry.Term == "" || entry.Definition == "" {
			return errors.New("entries must have a term and a definition")
		}

		pipe.SAdd(ctx, termSetKey, entry.Term)
		pipe.Set(ctx, termKeyPrefix+entry.Term, entry.Definition, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed lexicon: %w", err)
	}

	return nil
}
