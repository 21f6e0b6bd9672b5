package main

import (
	"context"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tigercart/tigercart/internal/cache"
	"github.com/tigercart/tigercart/internal/db"
	"github.com/tigercart/tigercart/internal/kafka"
	"github.com/tigercart/tigercart/internal/logger"
	"github.com/tigercart/tigercart/internal/repository/postgresql"
	"github.com/tigercart/tigercart/internal/server"
	"github.com/tigercart/tigercart/internal/storage"
)

func main() {
	log := logger.New()
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	defer database.GetPool().Close()

	if err := db.InitSchema(ctx, database); err != nil {
		log.Fatal("schema init", zap.Error(err))
	}

	itemRepo := postgresql.NewItemRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	cartRepo := postgresql.NewCartRepo(database)
	orderRepo := postgresql.NewOrderRepo(database)
	timelineRepo := postgresql.NewTimelineRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	stg := storage.NewPostgresStorage(database, itemRepo, userRepo, cartRepo, orderRepo, timelineRepo, outboxRepo, log)

	deliveries := cache.NewDeliveryCache(stg, log)
	if err := deliveries.LoadInitialData(ctx); err != nil {
		log.Fatal("delivery cache warmup", zap.Error(err))
	}

	producer := newProducer()

	// The publisher owns the producer and closes it on shutdown.
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	})

	auditManager := server.NewAuditManager(3, 10, 2*time.Second, producer, log)

	srv := server.New(stg, userRepo, deliveries, auditManager, log)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return srv.Run(groupCtx, db.Env("HTTP_PORT", "9000"))
	})

	group.Go(func() error {
		publisher.Run(groupCtx)
		return nil
	})

	group.Go(func() error {
		metricsServer := &http.Server{
			Addr:    ":" + db.Env("METRICS_PORT", "9090"),
			Handler: promhttp.Handler(),
		}
		go func() {
			<-groupCtx.Done()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		// Drain HTTP (and its audit workers) before the publisher closes
		// the shared producer.
		err := srv.Shutdown(shutdownCtx)
		publisher.Shutdown()
		return err
	})

	log.Info("tigercart started")

	if err := group.Wait(); err != nil {
		log.Fatal("service stopped", zap.Error(err))
	}
	log.Info("tigercart gracefully stopped")
}

func newProducer() kafka.Producer {
	brokers := db.Env("KAFKA_BROKERS", "")
	if brokers == "" {
		return kafka.NewConsoleProducer()
	}
	return kafka.NewKafkaProducer(strings.Split(brokers, ","))
}
