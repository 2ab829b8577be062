package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/simbalabs/simba-checkout-api/internal/core/errx"
	"github.com/simbalabs/simba-checkout-api/internal/domain/entities"
	"github.com/simbalabs/simba-checkout-api/internal/domain/repositories"
)

// RedisConfig is parsed by envconfig under the REDIS prefix. URL empty
// means the memory store is used instead.
type RedisConfig struct {
	URL          string `split_words:"true"`
	ReadTimeout  int    `split_words:"true" default:"3"`
	WriteTimeout int    `split_words:"true" default:"3"`
	DialTimeout  int    `split_words:"true" default:"5"`
}

// New builds and pings a Redis client from the config.
func (c *RedisConfig) New() (*redis.Client, error) {
	opts, err := redis.ParseURL(c.URL)
	if err != nil {
		return nil, err
	}

	opts.ReadTimeout = time.Duration(c.ReadTimeout) * time.Second
	opts.WriteTimeout = time.Duration(c.WriteTimeout) * time.Second
	opts.DialTimeout = time.Duration(c.DialTimeout) * time.Second

	client := redis.NewClient(opts)
	if cmd := client.Ping(context.Background()); cmd.Err() != nil {
		return nil, cmd.Err()
	}
	return client, nil
}

// RedisStore keeps sessions in Redis so any instance can serve any
// shopper. Sessions live under checkout:session:<id> with a reference
// index under checkout:ref:<reference>, both expiring with the TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return "checkout:session:" + id
}

func referenceKey(ref string) string {
	return "checkout:ref:" + ref
}

func (s *RedisStore) Save(ctx context.Context, session *entities.CheckoutSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return errx.Persistence(err)
	}
	if err := s.client.Set(ctx, sessionKey(session.ID), payload, s.ttl).Err(); err != nil {
		return errx.Persistence(err)
	}
	if session.Reference != "" {
		if err := s.client.Set(ctx, referenceKey(session.Reference), session.ID, s.ttl).Err(); err != nil {
			return errx.Persistence(err)
		}
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*entities.CheckoutSession, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, errx.NotFound("sessão de checkout não encontrada")
	}
	if err != nil {
		return nil, errx.Persistence(err)
	}

	var session entities.CheckoutSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, errx.Persistence(err)
	}
	return &session, nil
}

func (s *RedisStore) FindByReference(ctx context.Context, reference string) (*entities.CheckoutSession, error) {
	id, err := s.client.Get(ctx, referenceKey(reference)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, errx.NotFound("sessão de checkout não encontrada")
	}
	if err != nil {
		return nil, errx.Persistence(err)
	}
	return s.Get(ctx, id)
}

// Delete removes the session and its reference index in one round trip so
// a concurrent Save cannot observe one key without the other.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	session, err := s.Get(ctx, id)

	pipe := s.client.TxPipeline()
	if err == nil && session.Reference != "" {
		pipe.Del(ctx, referenceKey(session.Reference))
	}
	pipe.Del(ctx, sessionKey(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return errx.Persistence(err)
	}
	return nil
}

var _ repositories.SessionRepository = (*RedisStore)(nil)
