package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-ordering/config"
	"github.com/yeremiapane/food-ordering/database"
	"github.com/yeremiapane/food-ordering/events"
	"github.com/yeremiapane/food-ordering/models"
	"github.com/yeremiapane/food-ordering/repository"
	"github.com/yeremiapane/food-ordering/router"
	"github.com/yeremiapane/food-ordering/utils"
)

const redisSequenceKey = "food-ordering:order-seq"

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}

	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.InitDB(cfg, utils.InfoLogger)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(ctx, db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate database: %v", err)
	}
	if cfg.SeedOnStart {
		if err := database.Seed(ctx, db, cfg.SeedTestUsers); err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed database: %v", err)
		}
	}

	seq, closeRedis := newSequencer(ctx, cfg, db)
	defer closeRedis()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaEnabled() {
		publisher = events.NewKafkaPublisher(events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaOrderTopic))
		utils.InfoLogger.WithFields(logrus.Fields{
			"brokers": cfg.KafkaBrokers,
			"topic":   cfg.KafkaOrderTopic,
		}).Info("publishing order events to kafka")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			utils.ErrorLogger.Errorf("Failed to close event publisher: %v", err)
		}
	}()

	r := router.SetupRouter(router.Deps{
		Config:    cfg,
		DB:        db,
		Sequencer: seq,
		Publisher: publisher,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		utils.InfoLogger.Infof("%s listening on port %s", cfg.ServiceName, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	utils.InfoLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Errorf("Graceful shutdown failed: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

// newSequencer picks Redis INCR when REDIS_ADDR is set, otherwise the
// order_sequences table.
func newSequencer(ctx context.Context, cfg *config.Config, db *gorm.DB) (repository.Sequencer, func()) {
	if cfg.RedisAddr == "" {
		return repository.NewTableSequencer(models.OrderSequenceName), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to redis at %s: %v", cfg.RedisAddr, err)
	}

	last, err := repository.NewOrderRepository(db, nil).LastOrdinal(ctx)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to read last order id: %v", err)
	}
	seq, err := repository.NewRedisSequencer(ctx, client, redisSequenceKey, last)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialise redis sequencer: %v", err)
	}
	// An existing key may lag behind orders numbered by the table counter.
	if err := seq.Advance(ctx, nil, last); err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialise redis sequencer: %v", err)
	}
	utils.InfoLogger.WithField("redis", cfg.RedisAddr).Info("order ids assigned from redis")

	return seq, func() { client.Close() }
}
