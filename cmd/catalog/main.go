package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	videoapp "github.com/streamhaven/catalog/internal/application/video"
	"github.com/streamhaven/catalog/internal/config"
	domainevents "github.com/streamhaven/catalog/internal/domain/events"
	"github.com/streamhaven/catalog/internal/domain/video"
	"github.com/streamhaven/catalog/internal/infrastructure/events/kafka"
	"github.com/streamhaven/catalog/internal/infrastructure/events/nats"
	gormpersistence "github.com/streamhaven/catalog/internal/infrastructure/persistence/gorm"
	"github.com/streamhaven/catalog/internal/infrastructure/storage"
	"github.com/streamhaven/catalog/pkg/logger"
)

func main() {
	cfg := config.Load()

	log, err := logger.NewZapLogger(cfg.Server.Environment == "development")
	if err != nil {
		panic(err)
	}
	zl := log.Underlying()

	log.Info("catalog service starting")

	db, dbCleanup, err := gormpersistence.NewDB(cfg, zl)
	if err != nil {
		zl.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbCleanup()

	videoRepo := gormpersistence.NewVideoRepository(db)
	categoryRepo := gormpersistence.NewCategoryRepository(db)
	genreRepo := gormpersistence.NewGenreRepository(db)
	castMemberRepo := gormpersistence.NewCastMemberRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mediaStorage, err := newMediaStorage(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize media storage", zap.Error(err))
	}

	var (
		publisher  domainevents.Publisher
		natsClient *nats.Client
	)
	switch cfg.Events.Backend {
	case "kafka":
		kafkaPublisher, kafkaCleanup, err := kafka.NewPublisher(cfg, zl)
		if err != nil {
			zl.Fatal("failed to create Kafka publisher", zap.Error(err))
		}
		defer kafkaCleanup()
		publisher = kafkaPublisher
	case "nats":
		client, natsCleanup, err := nats.NewClient(cfg, zl)
		if err != nil {
			zl.Fatal("failed to connect to NATS", zap.Error(err))
		}
		defer natsCleanup()
		natsClient = client
		publisher = nats.NewPublisher(client, zl)
	default:
		zl.Fatal("unknown events backend", zap.String("backend", cfg.Events.Backend))
	}

	videoService := videoapp.NewService(
		videoRepo,
		mediaStorage,
		categoryRepo,
		genreRepo,
		castMemberRepo,
		publisher,
		log,
	)
	if natsClient != nil {
		consumer := nats.NewEncoderResultConsumer(natsClient, videoService, zl)
		if err := consumer.Start(ctx); err != nil {
			zl.Fatal("failed to start encoder result consumer", zap.Error(err))
		}
		defer func() {
			if err := consumer.Stop(); err != nil {
				zl.Error("failed to stop encoder result consumer", zap.Error(err))
			}
		}()
	}

	go startHealthServer(cfg, zl)

	log.Info("catalog service started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down")
	cancel()
	log.Info("catalog service stopped")
}

func newMediaStorage(ctx context.Context, cfg *config.Config, zl *zap.Logger) (video.MediaStorage, error) {
	switch cfg.Storage.Type {
	case "s3":
		return storage.NewS3MediaStorage(ctx, cfg.Storage.S3.Bucket, cfg.Storage.S3.Prefix, cfg.Storage.S3.Region, zl)
	case "local":
		return storage.NewLocalMediaStorage(cfg.Storage.LocalPath)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}

func startHealthServer(cfg *config.Config, zl *zap.Logger) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	addr := ":8081"
	zl.Info("health server starting", zap.String("address", addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		zl.Error("health server failed", zap.Error(err))
	}
}
