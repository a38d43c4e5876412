package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/oraculo/internal/catalog"
	"github.com/KirkDiggler/oraculo/internal/common/clock"
	"github.com/KirkDiggler/oraculo/internal/common/uuid"
	"github.com/KirkDiggler/oraculo/internal/config"
	"github.com/KirkDiggler/oraculo/internal/handlers/cli"
	"github.com/KirkDiggler/oraculo/internal/random"
	"github.com/KirkDiggler/oraculo/internal/repositories/document"
	"github.com/KirkDiggler/oraculo/internal/services/deck"
	"github.com/KirkDiggler/oraculo/internal/services/game"
	"github.com/KirkDiggler/oraculo/internal/services/messaging"
	"github.com/KirkDiggler/oraculo/internal/services/roster"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	repo, err := newRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to create document repository: %v", err)
	}

	src := random.New(&random.Config{Seed: cfg.Seed})
	clk := clock.New()

	names, err := catalog.Names()
	if err != nil {
		log.Fatalf("Failed to load name pool: %v", err)
	}

	rosterSvc, err := roster.New(&roster.Config{
		NamePool:      names,
		RevealLock:    cfg.RevealLock,
		Random:        src,
		Clock:         clk,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create roster service: %v", err)
	}

	var decks []*deck.Engine
	for _, id := range catalog.DeckIDs() {
		items, err := catalog.Deck(id)
		if err != nil {
			log.Fatalf("Failed to load deck %s: %v", id, err)
		}

		engine, err := deck.New(&deck.Config{
			DeckID:     id,
			Catalog:    items,
			Cooldown:   cfg.DrawCooldown,
			Repository: repo,
			Random:     src,
			Clock:      clk,
		})
		if err != nil {
			log.Fatalf("Failed to create deck %s: %v", id, err)
		}
		decks = append(decks, engine)
	}

	picker, err := deck.NewPicker(&deck.PickerConfig{Random: src})
	if err != nil {
		log.Fatalf("Failed to create picker: %v", err)
	}

	gameSvc, err := game.New(&game.Config{Repository: repo, Clock: clk})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	oracle, err := messaging.NewService(&messaging.Config{Random: src})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	console, err := cli.New(&cli.Config{
		Roster:    rosterSvc,
		Decks:     decks,
		Picker:    picker,
		Game:      gameSvc,
		Messaging: oracle,
		In:        os.Stdin,
		Out:       os.Stdout,
	})
	if err != nil {
		log.Fatalf("Failed to create console: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	log.Printf("Oraculo ready with %s store. Type help for commands.", cfg.Store)

	done := make(chan error, 1)
	go func() {
		done <- console.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Console stopped: %v", err)
		}
	case <-ctx.Done():
	}

	console.Stop()
	log.Println("Oraculo has been shut down")
}

func newRepository(cfg *config.Config) (document.Repository, error) {
	if cfg.Store != config.StoreRedis {
		return document.NewMemory(), nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	repo, err := document.NewRedis(&document.Config{
		RedisClient: redisClient,
		KeyPrefix:   cfg.KeyPrefix,
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Connected to Redis at %s", cfg.RedisAddr)
	return repo, nil
}
