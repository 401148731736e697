package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/WyZzYx/APBD10/internal/api"
	"github.com/WyZzYx/APBD10/internal/api/events"
	"github.com/WyZzYx/APBD10/internal/repository"
	"github.com/WyZzYx/APBD10/internal/service"
	"github.com/WyZzYx/APBD10/pkg/broker"
	"github.com/WyZzYx/APBD10/pkg/config"
	"github.com/WyZzYx/APBD10/pkg/logger"
	"github.com/WyZzYx/APBD10/pkg/postgres"
)

type eventPublisher interface {
	service.Publisher
	Close()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("init logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	var publisher eventPublisher = broker.NewNopProducer()

	if cfg.Kafka.Enabled() {
		publisher = broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.DeviceEventsTopic)
	} else {
		slog.WarnContext(ctx, "kafka brokers are not configured, device events are disabled")
	}
	defer publisher.Close()

	s := service.New(repo, publisher)

	if cfg.Kafka.Enabled() {
		consumer := broker.NewConsumer(l, cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.DeviceAssignmentsTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.DeviceAssignmentsTopic, eventHandler.OnDeviceAssignment)
		consumer.Consume(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware()

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTP.Port)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
