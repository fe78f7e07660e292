package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/campus-erp-api/internal/models"
	"github.com/noah-isme/campus-erp-api/pkg/config"
)

// RedisStore keeps the aggregate document and session reference as two
// plain keys in Redis.
type RedisStore struct {
	client     *redis.Client
	dataKey    string
	sessionKey string
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg config.RedisConfig) (*RedisStore, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	keyspace := cfg.KeySpace
	if keyspace == "" {
		keyspace = "campus-erp"
	}
	return &RedisStore{
		client:     client,
		dataKey:    keyspace + ":data",
		sessionKey: keyspace + ":user",
	}, nil
}

// Load fetches and decodes the aggregate document.
func (s *RedisStore) Load(ctx context.Context) (*models.Snapshot, error) {
	raw, err := s.client.Get(ctx, s.dataKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot key: %w", err)
	}
	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot document: %w", err)
	}
	return &snap, nil
}

// Save encodes and stores the aggregate document.
func (s *RedisStore) Save(ctx context.Context, snap *models.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.dataKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("set snapshot key: %w", err)
	}
	return nil
}

// LoadSession fetches the persisted session reference.
func (s *RedisStore) LoadSession(ctx context.Context) (string, error) {
	accountID, err := s.client.Get(ctx, s.sessionKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get session key: %w", err)
	}
	return accountID, nil
}

// SaveSession stores the session reference, or deletes it when empty.
func (s *RedisStore) SaveSession(ctx context.Context, accountID string) error {
	if accountID == "" {
		if err := s.client.Del(ctx, s.sessionKey).Err(); err != nil {
			return fmt.Errorf("delete session key: %w", err)
		}
		return nil
	}
	if err := s.client.Set(ctx, s.sessionKey, accountID, 0).Err(); err != nil {
		return fmt.Errorf("set session key: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
