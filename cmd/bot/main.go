package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/example/entscheidungshelfer-bot/internal/app"
	"github.com/example/entscheidungshelfer-bot/internal/config"
	"github.com/example/entscheidungshelfer-bot/internal/repository"
	"github.com/example/entscheidungshelfer-bot/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	var repo repository.StateRepository
	if cfg.DBConnString != "" {
		repo, err = repository.NewPostgresStateRepository(cfg.DBConnString)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		repo = repository.NewFileStateRepository(cfg.StatePath)
	}

	ctx := context.Background()
	state, err := service.NewStateService(ctx, repo)
	if err != nil {
		// A corrupt state document is fatal on purpose: defaulting here
		// would silently erase subscriber records.
		log.Fatal(err)
	}

	application := app.New(cfg, state)
	if err := application.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
