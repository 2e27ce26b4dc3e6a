package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"attentionops/backend/internal/mission"

	"github.com/redis/go-redis/v9"
)

const DefaultRedisKeyPrefix = "attentionops:missions:"

// createMissionScript numbers, stores and indexes a record in one atomic step.
// KEYS: seq, current, history. ARGV[1]: record JSON without missionNumber.
var createMissionScript = redis.NewScript(`
local number = redis.call('INCR', KEYS[1])
local record = cjson.decode(ARGV[1])
record['missionNumber'] = number
local data = cjson.encode(record)
redis.call('SET', KEYS[2], data)
redis.call('RPUSH', KEYS[3], data)
return data
`)

// ConnectRedis parses a redis:// URL and verifies the connection.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(strings.TrimSpace(redisURL))
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) seqKey() string     { return s.prefix + "seq" }
func (s *RedisStore) currentKey() string { return s.prefix + "current" }
func (s *RedisStore) historyKey() string { return s.prefix + "history" }

func (s *RedisStore) Create(ctx context.Context, draft mission.Draft) (mission.Mission, error) {
	record := mission.NewMission(draft, 0, time.Now())
	payload, err := json.Marshal(record)
	if err != nil {
		return mission.Mission{}, fmt.Errorf("encode mission: %w", err)
	}

	data, err := createMissionScript.Run(ctx, s.client,
		[]string{s.seqKey(), s.currentKey(), s.historyKey()},
		string(payload),
	).Text()
	if err != nil {
		return mission.Mission{}, fmt.Errorf("store mission: %w", err)
	}

	var stored mission.Mission
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return mission.Mission{}, fmt.Errorf("decode stored mission: %w", err)
	}
	return stored, nil
}

func (s *RedisStore) Current(ctx context.Context) (*mission.Mission, error) {
	data, err := s.client.Get(ctx, s.currentKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get current mission: %w", err)
	}

	var record mission.Mission
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode current mission: %w", err)
	}
	return &record, nil
}

func (s *RedisStore) Count(ctx context.Context) (int, error) {
	count, err := s.client.LLen(ctx, s.historyKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("count missions: %w", err)
	}
	return int(count), nil
}

func (s *RedisStore) History(ctx context.Context, limit int) ([]mission.Mission, error) {
	start := int64(0)
	if limit > 0 {
		start = -int64(limit)
	}
	items, err := s.client.LRange(ctx, s.historyKey(), start, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read mission history: %w", err)
	}

	records := make([]mission.Mission, 0, len(items))
	for idx := len(items) - 1; idx >= 0; idx-- {
		var record mission.Mission
		if err := json.Unmarshal([]byte(items[idx]), &record); err != nil {
			return nil, fmt.Errorf("decode mission history: %w", err)
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
