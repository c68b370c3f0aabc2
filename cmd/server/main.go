package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mernspace/catalog-service/internal/api"
	"github.com/mernspace/catalog-service/internal/infrastructure/auth"
	"github.com/mernspace/catalog-service/internal/infrastructure/broker/kafka"
	"github.com/mernspace/catalog-service/internal/infrastructure/config"
	catalogmongo "github.com/mernspace/catalog-service/internal/infrastructure/db/mongo"
	catalogredis "github.com/mernspace/catalog-service/internal/infrastructure/db/redis"
	"github.com/mernspace/catalog-service/internal/infrastructure/storage/s3"
	"github.com/mernspace/catalog-service/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	client, db, err := catalogmongo.Connect(ctx, catalogmongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	// Redis only backs the JWKS cache; the service stays up without it.
	rdb, err := catalogredis.Connect(ctx, catalogredis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, jwks caching disabled")
		rdb = nil
	} else {
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("redis close")
			}
		}()
	}

	producer := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Kafka.Brokers,
		ClientID: cfg.Kafka.ClientID,
	})
	defer func() {
		if err := producer.Close(); err != nil {
			log.Warn().Err(err).Msg("kafka close")
		}
	}()

	storage, err := s3.NewStorage(ctx, s3.Config{
		Region:          cfg.S3.Region,
		Bucket:          cfg.S3.Bucket,
		AccessKeyID:     cfg.S3.AccessKeyID,
		SecretAccessKey: cfg.S3.SecretAccessKey,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("init s3 storage")
	}

	var keyStore auth.KeyStore
	if rdb != nil {
		keyStore = catalogredis.NewKeyCache(rdb)
	}
	keys := auth.NewJWKSProvider(cfg.JWKSURI, keyStore, log)

	e := api.NewRouter(api.RouterParams{
		Config:  cfg,
		Logger:  log,
		DB:      db,
		Redis:   rdb,
		Broker:  producer,
		Storage: storage,
		Keys:    keys,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http server")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown")
	}
}

// ensureIndexes creates the unique (name, tenant_id) and filter indexes for
// every collection at startup. Safe to run repeatedly.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := catalogmongo.NewCategoryRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := catalogmongo.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return catalogmongo.NewToppingRepository(db).EnsureIndexes(ctx)
}
