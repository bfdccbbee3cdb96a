package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/redis/go-redis/v9"

	"github.com/Mr-Jen/lexifine-server/internal/common/clock"
	"github.com/Mr-Jen/lexifine-server/internal/common/uuid"
	"github.com/Mr-Jen/lexifine-server/internal/handlers/ws"
	"github.com/Mr-Jen/lexifine-server/internal/random"
	lexiconRepo "github.com/Mr-Jen/lexifine-server/internal/repositories/lexicon"
	sessionRepo "github.com/Mr-Jen/lexifine-server/internal/repositories/session"
	"github.com/Mr-Jen/lexifine-server/internal/services/game"
	"github.com/Mr-Jen/lexifine-server/internal/services/messaging"
)

func serve(ctx context.Context, cfg *config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rnd := random.New(&random.Config{})

	lexicon, cleanup, err := buildLexicon(ctx, cfg, rnd)
	if err != nil {
		return err
	}
	defer cleanup()

	msgSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return err
	}

	hub := ws.NewHub()

	gameService, err := game.New(&game.Config{
		SessionRepo:             sessionRepo.NewMemory(),
		LexiconRepo:             lexicon,
		Messaging:               msgSvc,
		Notifier:                hub,
		Clock:                   clock.New(),
		UUIDGenerator:           uuid.New(),
		Random:                  rnd,
		MaxRounds:               cfg.maxRounds,
		DefineDuration:          cfg.defineTimeout,
		VoteTailDuration:        cfg.voteTailTimeout,
		ScoreboardDuration:      cfg.scoreboardDisplay,
		FinalScoreboardDuration: cfg.finalScoreboard,
		RevealDelay:             cfg.revealDelay,
		TruthGuessPoints:        cfg.truthPoints,
		FooledVotePoints:        cfg.fooledPoints,
	})
	if err != nil {
		return err
	}
	defer gameService.Close()

	handler, err := ws.NewHandler(&ws.Config{
		GameService:  gameService,
		Hub:          hub,
		PathPrefix:   strings.TrimSuffix(cfg.prefix, "/"),
		ShareBaseURL: cfg.shareURL,
		Verbose:      cfg.verbose,
	})
	if err != nil {
		return err
	}

	router := httprouter.New()
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.bind, cfg.port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", srv.Addr)
		if cfg.tlsCert != "" && cfg.tlsKey != "" {
			errCh <- srv.ListenAndServeTLS(cfg.tlsCert, cfg.tlsKey)
		} else {
			errCh <- srv.ListenAndServe()
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// buildLexicon picks the corpus backend: redis when an address is
// configured (seeding the embedded corpus on first run), the in-process
// corpus otherwise.
func buildLexicon(ctx context.Context, cfg *config, rnd *random.Source) (lexiconRepo.Repository, func(), error) {
	if cfg.redisAddr == "" {
		repo, err := lexiconRepo.NewStatic(&lexiconRepo.StaticConfig{Random: rnd})
		if err != nil {
			return nil, nil, err
		}
		return repo, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.redisAddr,
		Password: cfg.redisPassword,
	})

	repo, err := lexiconRepo.NewRedis(&lexiconRepo.Config{
		RedisClient: client,
		Random:      rnd,
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	count, err := repo.Count(ctx)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	if count == 0 {
		log.Println("seeding redis lexicon with the embedded corpus")
		err := repo.Seed(ctx, &lexiconRepo.SeedInput{Entries: lexiconRepo.Corpus()})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
	}

	return repo, func() { _ = client.Close() }, nil
}
