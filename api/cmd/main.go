package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"

	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/behavior"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/recommend"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/application/user"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/config"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/infrastructure/db/postgres"
	rabbitpub "github.com/NipunDemintha/sustainable-shopping-planner/internal/infrastructure/messaging/rabbitmq"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/logger"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/handlers"
	"github.com/NipunDemintha/sustainable-shopping-planner/internal/transport/http/router"
)

// App holds all dependencies for the service
type App struct {
	Config *config.Config
	Server *http.Server
	DB     *sql.DB

	Publisher *rabbitpub.Publisher
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			zlog.Fatal().Err(err).Msg("db ping failed")
		}
	}

	// Schema must exist before the first request is accepted.
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			zlog.Fatal().Err(err).Msg("schema init failed")
		}
	}

	app := NewApp(cfg, db)
	defer func() {
		if app.Publisher != nil {
			_ = app.Publisher.Close()
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		errCh <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server crashed")
		}
	case <-ctx.Done():
		zlog.Info().Msg("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := app.Server.Shutdown(shutCtx); err != nil {
			zlog.Error().Err(err).Msg("shutdown failed")
		}
	}
}

func NewApp(cfg *config.Config, db *sql.DB) *App {
	// 1) Infrastructure
	userRepo := postgres.NewUserRepo(db)
	behaviorRepo := postgres.NewBehaviorRepo(db)

	// publisher wiring
	var rabbit *rabbitpub.Publisher
	var pub behavior.EventPublisher = behavior.NoopPublisher{}

	if cfg.RabbitURL != "" {
		p, err := rabbitpub.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			zlog.Fatal().Err(err).Msg("rabbit publisher init failed")
		}
		rabbit = p
		pub = p
		zlog.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbit publisher ready")
	} else {
		zlog.Warn().Msg("RABBIT_URL empty: behavior events will not be published")
	}

	// 2) Application
	userSvc := user.New(userRepo)
	behaviorSvc := behavior.New(behaviorRepo, pub)
	recSvc := recommend.New(behaviorRepo)

	// 3) Transport
	usersH := handlers.NewUsersHandler(userSvc)
	authH := handlers.NewAuthHandler(userSvc)
	behaviorH := handlers.NewBehaviorHandler(behaviorSvc)
	recsH := handlers.NewRecommendationsHandler(recSvc)
	healthH := handlers.NewHealthHandler()

	// 4) Router
	httpHandler := router.New(usersH, authH, behaviorH, recsH, healthH, cfg)

	// 5) Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:    cfg,
		Server:    srv,
		DB:        db,
		Publisher: rabbit,
	}
}
