package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/atlasrent/rental-service/config"
	"github.com/atlasrent/rental-service/internal/handler"
	"github.com/atlasrent/rental-service/internal/repository"
	"github.com/atlasrent/rental-service/internal/server"
	"github.com/atlasrent/rental-service/internal/service"
	"github.com/atlasrent/rental-service/migrations"
	"github.com/atlasrent/rental-service/pkg/cache"
	"github.com/atlasrent/rental-service/pkg/kafka"
	"github.com/atlasrent/rental-service/pkg/logger"
	"github.com/atlasrent/rental-service/pkg/postgres"
)

func Run(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "rental")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %v", err)
	}

	var producer sarama.SyncProducer
	if cfg.Kafka.Enabled {
		if producer, err = kafka.NewProducer(cfg.Kafka); err != nil {
			return fmt.Errorf("kafka producer %v", err)
		}
	}

	var redisCli *redis.Client
	if cfg.Redis.Enabled {
		if redisCli, err = cache.NewClient(context.Background(), cfg.Redis); err != nil {
			return fmt.Errorf("redis client %v", err)
		}
	}

	svc := service.NewService(repo, cfg.JWT, producer, redisCli, log)
	h := handler.New(handler.Services{
		Auth:        svc,
		Car:         svc,
		Reservation: svc,
		Rating:      svc,
		Membership:  svc,
		Promotion:   svc,
	}, cfg.JWT, log)

	// Hourly sweep flips accepted reservations past their return date to
	// completed.
	sched := cron.New()
	if _, err := sched.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if _, err := svc.CompletePastDue(ctx); err != nil {
			log.Error("complete past due sweep", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("cron %v", err)
	}
	sched.Start()

	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	<-sched.Stop().Done()
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	if redisCli != nil {
		if err := redisCli.Close(); err != nil {
			log.Error("redis.Close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
