package service

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/atlasrent/rental-service/internal/repository"
	"github.com/atlasrent/rental-service/pkg/auth"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	jwt      auth.Config
	producer sarama.SyncProducer
	cache    *redis.Client
	now      func() time.Time
}

// NewService wires the domain logic. producer and cache may be nil, in which
// case event publishing and promotion caching are skipped.
func NewService(repo repository.Repository, jwt auth.Config, producer sarama.SyncProducer, cache *redis.Client, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		jwt:      jwt,
		producer: producer,
		cache:    cache,
		now:      time.Now,
	}
}

// publish emits a domain event; failures are logged and swallowed since the
// request that produced the event has already committed.
func (s *Service) publish(topic string, event interface{}) {
	if s.producer == nil {
		return
	}
	b, err := json.Marshal(event)
	if err != nil {
		s.log.Warn("event marshal", zap.Error(err))
		return
	}
	if _, _, err := s.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(uuid.NewString()),
		Value: sarama.ByteEncoder(b),
	}); err != nil {
		s.log.Warn("event publish", zap.String("topic", topic), zap.Error(err))
	}
}
