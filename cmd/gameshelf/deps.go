package main

import (
	"context"
	"fmt"

	"github.com/dom/gameshelf/internal/config"
	"github.com/dom/gameshelf/internal/logging"
	"github.com/dom/gameshelf/internal/repository"
	"github.com/dom/gameshelf/internal/repository/postgres"
	redisrepo "github.com/dom/gameshelf/internal/repository/redis"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps holds the process-wide handles built once at startup and passed
// down explicitly.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
	repos  *repository.Repositories
	close  func()
}

func loadDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	repos := postgres.NewRepositories(db)
	closers := []func(){
		func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}

	if cfg.SessionStore == config.SessionStoreRedis {
		client, err := redisrepo.NewClient(ctx, redisrepo.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			closers[0]()
			_ = logger.Sync()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		repos.Session = redisrepo.NewSessionRepository(client)
		closers = append(closers, func() { _ = client.Close() })
		logger.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
	}

	return &deps{
		cfg:    cfg,
		logger: logger,
		db:     db,
		repos:  repos,
		close: func() {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
			_ = logger.Sync()
		},
	}, nil
}
