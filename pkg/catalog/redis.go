package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures the Redis-backed store.
type RedisOptions struct {
	// URL is the connection string, e.g. "redis://localhost:6379".
	URL string

	// KeyPrefix namespaces every key this store writes.
	// Defaults to "knotclass:catalog:".
	KeyPrefix string

	// ConnectTimeout bounds the initial connection check.
	ConnectTimeout time.Duration
}

// RedisStore keeps records in Redis so concurrent classification runs
// share one catalog. Records live under per-digest keys; an index set
// tracks the catalogued digests for listing.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis and verifies the connection with a
// ping before returning the store.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = "knotclass:catalog:"
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	ropts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(ropts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &RedisStore{client: client, prefix: opts.KeyPrefix}, nil
}

// Get retrieves the record for a digest.
func (s *RedisStore) Get(ctx context.Context, digest string) (Record, error) {
	data, err := s.client.Get(ctx, s.key(digest)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Record{}, fmt.Errorf("record %s: %w", digest, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("read record %s: %w", digest, err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decode record %s: %w", digest, err)
	}
	return rec, nil
}

// Put stores the record unless its digest is already catalogued. SETNX
// keeps the insert atomic across concurrent writers.
func (s *RedisStore) Put(ctx context.Context, rec Record) (bool, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return false, fmt.Errorf("encode record %s: %w", rec.Digest, err)
	}
	added, err := s.client.SetNX(ctx, s.key(rec.Digest), data, 0).Result()
	if err != nil {
		return false, fmt.Errorf("write record %s: %w", rec.Digest, err)
	}
	if added {
		if err := s.client.SAdd(ctx, s.indexKey(), rec.Digest).Err(); err != nil {
			return false, fmt.Errorf("index record %s: %w", rec.Digest, err)
		}
	}
	return added, nil
}

// List returns all records sorted by digest.
func (s *RedisStore) List(ctx context.Context) ([]Record, error) {
	digests, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	slices.Sort(digests)
	recs := make([]Record, 0, len(digests))
	for _, digest := range digests {
		rec, err := s.Get(ctx, digest)
		if errors.Is(err, ErrNotFound) {
			// Deleted between SMEMBERS and GET.
			continue
		}
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Delete removes the record for a digest. Missing digests are not an
// error.
func (s *RedisStore) Delete(ctx context.Context, digest string) error {
	if err := s.client.Del(ctx, s.key(digest)).Err(); err != nil {
		return fmt.Errorf("delete record %s: %w", digest, err)
	}
	if err := s.client.SRem(ctx, s.indexKey(), digest).Err(); err != nil {
		return fmt.Errorf("unindex record %s: %w", digest, err)
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error { return s.client.Close() }

func (s *RedisStore) key(digest string) string { return s.prefix + digest }

func (s *RedisStore) indexKey() string { return s.prefix + "index" }

var _ Store = (*RedisStore)(nil)
