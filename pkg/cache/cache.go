package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr    string `yaml:"addr" envconfig:"REDIS_ADDR" default:"localhost:6379"`
	DB      int    `yaml:"db" envconfig:"REDIS_DB" default:"0"`
	Enabled bool   `yaml:"enabled" envconfig:"REDIS_ENABLED" default:"false"`
}

func NewClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	cli := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})
	if err := cli.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return cli, nil
}

// GetJSON loads the value under key into dest. Returns redis.Nil on a miss.
func GetJSON(ctx context.Context, cli *redis.Client, key string, dest interface{}) error {
	data, err := cli.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func SetJSON(ctx context.Context, cli *redis.Client, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return cli.Set(ctx, key, data, ttl).Err()
}

func Delete(ctx context.Context, cli *redis.Client, keys ...string) error {
	return cli.Del(ctx, keys...).Err()
}
