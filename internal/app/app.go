package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/driver-twin/config"
	"github.com/Temutjin2k/driver-twin/internal/adapter/http/server"
	repo "github.com/Temutjin2k/driver-twin/internal/adapter/postgres"
	rabbitadapter "github.com/Temutjin2k/driver-twin/internal/adapter/rabbit"
	"github.com/Temutjin2k/driver-twin/internal/service/auth"
	"github.com/Temutjin2k/driver-twin/internal/service/ingest"
	"github.com/Temutjin2k/driver-twin/internal/service/twin"
	"github.com/Temutjin2k/driver-twin/pkg/logger"
	"github.com/Temutjin2k/driver-twin/pkg/postgres"
	"github.com/Temutjin2k/driver-twin/pkg/rabbit"
	"github.com/Temutjin2k/driver-twin/pkg/trm"
)

type App struct {
	postgresDB    *postgres.PostgreDB
	rabbitMQ      *rabbit.RabbitMQ
	httpServer    *server.API
	ingestService *ingest.Service
	consumer      *rabbitadapter.ActivityConsumer

	cfg config.Config
	log logger.Logger
}

func NewApplication(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	postgresDB, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "Failed to setup database", err)
		return nil, err
	}

	app := &App{
		postgresDB: postgresDB,
		cfg:        cfg,
		log:        log,
	}

	// RabbitMQ is optional. With both sides disabled the service runs
	// HTTP-only and never dials the broker.
	var publisher twin.ResultPublisher
	if cfg.RabbitMQ.ConsumerEnabled || cfg.RabbitMQ.PublisherEnabled {
		rabbitMQ, err := rabbit.New(ctx, cfg.RabbitMQ.GetDSN(), log)
		if err != nil {
			log.Error(ctx, "Failed to setup rabbitmq", err)
			app.close(ctx)
			return nil, err
		}
		app.rabbitMQ = rabbitMQ

		if cfg.RabbitMQ.PublisherEnabled {
			publisher = rabbitadapter.NewTwinProducer(rabbitMQ, log)
		}
		if cfg.RabbitMQ.ConsumerEnabled {
			app.consumer = rabbitadapter.NewActivityConsumer(rabbitMQ, log)
		}
	}

	activityRepo := repo.NewActivityRepo(postgresDB.Pool)
	txManager := trm.New(postgresDB.Pool)

	app.ingestService = ingest.New(activityRepo, txManager, log)
	twinService := twin.New(activityRepo, publisher, cfg.Twin.Params(), log)
	authService := auth.NewTokenService(cfg.Auth.JWTSecret)

	httpServer, err := server.New(cfg, twinService, app.ingestService, authService, log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		app.close(ctx)
		return nil, err
	}
	app.httpServer = httpServer

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.httpServer.Run(ctx, errCh)
	defer func() {
		a.close(ctx)
		a.log.Info(ctx, "twin service closed")
	}()

	consumerCtx, cancelConsumer := context.WithCancel(ctx)
	defer cancelConsumer()
	if a.consumer != nil {
		go func() {
			if err := a.consumer.ConsumeTripCompleted(consumerCtx, a.ingestService.Ingest); err != nil {
				errCh <- err
			}
		}()
	}

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	a.log.Info(ctx, "twin service started")

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		a.log.Info(ctx, "shutting down application", "signal", sig.String())
		return nil
	}
}

func (a *App) close(ctx context.Context) {
	if a.httpServer != nil {
		if err := a.httpServer.Stop(ctx); err != nil {
			a.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if a.rabbitMQ != nil {
		if err := a.rabbitMQ.Close(ctx); err != nil {
			a.log.Warn(ctx, "Failed to gracefully close rabbitmq connection", "error", err.Error())
		}
	}

	if a.postgresDB != nil && a.postgresDB.Pool != nil {
		a.postgresDB.Pool.Close()
	}
}
