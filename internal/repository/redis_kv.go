package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKeyPrefix namespaces every key written by RedisKVRepo.
const RedisKeyPrefix = "cursada:"

var errReadInBatch = errors.New("reads are not available inside an atomic redis batch")

// redisEntry is the stored hash layout: the value plus its write time.
const (
	fieldValue   = "value"
	fieldUpdated = "updated_at"
)

// RedisKVRepo implements KVRepo on Redis hashes. In batch mode it queues
// writes on a MULTI/EXEC pipeline and refuses reads.
type RedisKVRepo struct {
	rdb   redis.Cmdable
	batch bool
}

// NewRedisKVRepo creates a new RedisKVRepo.
func NewRedisKVRepo(rdb redis.Cmdable) *RedisKVRepo {
	return &RedisKVRepo{rdb: rdb}
}

func (r *RedisKVRepo) Get(ctx context.Context, key string) (string, error) {
	if r.batch {
		return "", errReadInBatch
	}
	value, err := r.rdb.HGet(ctx, RedisKeyPrefix+key, fieldValue).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("kv entry %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading kv entry %q: %w", key, err)
	}
	return value, nil
}

func (r *RedisKVRepo) Put(ctx context.Context, key, value string) error {
	err := r.rdb.HSet(ctx, RedisKeyPrefix+key, fieldValue, value, fieldUpdated, nowUTC()).Err()
	if err != nil {
		return fmt.Errorf("writing kv entry %q: %w", key, err)
	}
	return nil
}

func (r *RedisKVRepo) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, RedisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("deleting kv entry %q: %w", key, err)
	}
	return nil
}

func (r *RedisKVRepo) List(ctx context.Context, prefix string) ([]KVEntry, error) {
	if r.batch {
		return nil, errReadInBatch
	}
	var keys []string
	iter := r.rdb.Scan(ctx, 0, globPrefix(RedisKeyPrefix+prefix), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("scanning kv keys: %w", err)
	}
	sort.Strings(keys)

	out := make([]KVEntry, 0, len(keys))
	for _, k := range keys {
		fields, err := r.rdb.HGetAll(ctx, k).Result()
		if err != nil {
			return nil, fmt.Errorf("reading kv entry %q: %w", k, err)
		}
		if len(fields) == 0 {
			continue
		}
		out = append(out, KVEntry{
			Key:       strings.TrimPrefix(k, RedisKeyPrefix),
			Value:     fields[fieldValue],
			UpdatedAt: parseTime(fields[fieldUpdated]),
		})
	}
	return out, nil
}

// RedisKVStore implements KVStore on a Redis server.
type RedisKVStore struct {
	client *redis.Client
}

// NewRedisKVStore wraps an existing client.
func NewRedisKVStore(client *redis.Client) *RedisKVStore {
	return &RedisKVStore{client: client}
}

// OpenRedisKVStore connects to addr and verifies the connection with PING.
func OpenRedisKVStore(ctx context.Context, addr string) (*RedisKVStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        addr,
		DialTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return NewRedisKVStore(client), nil
}

func (s *RedisKVStore) KV() KVRepo {
	return NewRedisKVRepo(s.client)
}

func (s *RedisKVStore) Atomic(ctx context.Context, fn func(ctx context.Context, kv KVRepo) error) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return fn(ctx, &RedisKVRepo{rdb: pipe, batch: true})
	})
	if err != nil {
		return fmt.Errorf("redis batch: %w", err)
	}
	return nil
}

func (s *RedisKVStore) Close() error {
	return s.client.Close()
}
