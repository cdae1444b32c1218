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

	"github.com/redis/go-redis/v9"

	"github.com/samandr77/microservices/certification/internal/api"
	"github.com/samandr77/microservices/certification/internal/api/events"
	"github.com/samandr77/microservices/certification/internal/clients/storage"
	"github.com/samandr77/microservices/certification/internal/repository"
	"github.com/samandr77/microservices/certification/internal/service"
	"github.com/samandr77/microservices/certification/pkg/broker"
	"github.com/samandr77/microservices/certification/pkg/config"
	"github.com/samandr77/microservices/certification/pkg/job"
	"github.com/samandr77/microservices/certification/pkg/logger"
	"github.com/samandr77/microservices/certification/pkg/postgres"
	"github.com/samandr77/microservices/certification/pkg/ratelimit"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

//nolint:funlen
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.LogLevel)
	panicOnErr("init logger", err)

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)
	storageClient := storage.NewClient(cfg.Storage)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.WorkflowEventsTopic)
	defer producer.Close()

	var limiter *ratelimit.Limiter

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer rdb.Close()

		limiter = ratelimit.New(rdb, "certification:upload", cfg.Redis.UploadRateLimit, cfg.Redis.UploadWindow)
	}

	s := service.New(repo, storageClient, producer, cfg.JWTSecret, cfg.ExpiryNoticeWindow)

	// Kafka consumers
	{
		consumer := broker.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.ConsumerID, cfg.Kafka.TrainingCompletedTopic)
		defer consumer.Close()

		eventHandler := events.NewEventHandler(s)

		consumer.Handle(cfg.Kafka.TrainingCompletedTopic, eventHandler.OnTrainingCompleted)
		consumer.Consume(ctx)
	}

	jobs := job.NewService().
		RegisterJob("expiry_notices", cfg.JobExpiryInterval, s.NotifyExpiringCertificates)
	jobs.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s, limiter)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
	jobs.Stop()
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
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
