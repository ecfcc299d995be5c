package scorestore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/darthkolli145/Mazegame/scoreboard"
	"github.com/darthkolli145/Mazegame/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const scoreKeyPrefix = "mazegame:scores:"

// RedisStore keeps one sorted set of score records per difficulty.
type RedisStore struct {
	client  *redis.Client
	locker  *redsync.Redsync
	maxKept int64
}

// NewRedisStore initializes a RedisStore with the provided Redis client.
func NewRedisStore(client *redis.Client, maxKept int) (i.ScoreStore, error) {
	if maxKept <= 0 {
		maxKept = 50
	}
	store := &RedisStore{
		client:  client,
		maxKept: int64(maxKept),
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

// Record adds the score to the difficulty's sorted set and trims the
// tail beyond the retention cap. Trimming runs under a lock so two
// game processes sharing the scoreboard do not race the cut.
func (rs *RedisStore) Record(ctx context.Context, rec scoreboard.Record) error {
	member, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	key := scoreKeyPrefix + rec.Difficulty
	if _, err := rs.client.ZAdd(ctx, key, redis.Z{Score: float64(rec.Score), Member: member}).Result(); err != nil {
		return err
	}

	mutex := rs.locker.NewMutex(key + ":trim_lock")
	if err := mutex.Lock(); err != nil {
		return err
	}
	defer func() {
		_, _ = mutex.Unlock()
	}()

	return rs.client.ZRemRangeByRank(ctx, key, 0, -(rs.maxKept + 1)).Err()
}

// TopScores retrieves up to n members with the highest scores.
func (rs *RedisStore) TopScores(ctx context.Context, difficulty string, n int) ([]scoreboard.Record, error) {
	key := scoreKeyPrefix + difficulty
	members, err := rs.client.ZRevRange(ctx, key, 0, int64(n)-1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]scoreboard.Record, 0, len(members))
	for _, m := range members {
		var rec scoreboard.Record
		if err := json.Unmarshal([]byte(m), &rec); err != nil {
			return nil, fmt.Errorf("corrupt score member: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
