package agentlock

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// The stored value is "<jobID>|<jobType>|<acquiredAt unix ms>": redislock
// writes token followed by metadata.
const sep = "|"

var (
	refreshScript = redis.NewScript(`
local v = redis.call("GET", KEYS[1])
if v and string.sub(v, 1, string.len(ARGV[1])) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)

	releaseScript = redis.NewScript(`
local v = redis.call("GET", KEYS[1])
if v and string.sub(v, 1, string.len(ARGV[1])) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)
)

type RedisLocker struct {
	client *redis.Client
	locker *redislock.Client
	prefix string
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{
		client: client,
		locker: redislock.New(client),
		prefix: "agentlock:",
	}
}

func (r *RedisLocker) key(userID string) string {
	return r.prefix + userID
}

func (r *RedisLocker) Acquire(ctx context.Context, userID, jobID, jobType string, ttl time.Duration) (bool, error) {
	_, err := r.locker.Obtain(ctx, r.key(userID), ttl, &redislock.Options{
		Token:    jobID,
		Metadata: sep + jobType + sep + strconv.FormatInt(time.Now().UnixMilli(), 10),
	})
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, redislock.ErrNotObtained) {
		return false, fmt.Errorf("obtain agent lock: %w", err)
	}

	h, err := r.Holder(ctx, userID)
	if err != nil {
		return false, err
	}
	return h != nil && h.JobID == jobID, nil
}

func (r *RedisLocker) Refresh(ctx context.Context, userID, jobID string, ttl time.Duration) (bool, error) {
	n, err := refreshScript.Run(ctx, r.client, []string{r.key(userID)}, jobID+sep, ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("refresh agent lock: %w", err)
	}
	return n == 1, nil
}

func (r *RedisLocker) Release(ctx context.Context, userID, jobID string) error {
	if err := releaseScript.Run(ctx, r.client, []string{r.key(userID)}, jobID+sep).Err(); err != nil {
		return fmt.Errorf("release agent lock: %w", err)
	}
	return nil
}

func (r *RedisLocker) ForceRelease(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.key(userID)).Err()
}

func (r *RedisLocker) Holder(ctx context.Context, userID string) (*Holder, error) {
	v, err := r.client.Get(ctx, r.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return parseValue(v)
}

func parseValue(v string) (*Holder, error) {
	parts := strings.SplitN(v, sep, 3)
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed agent lock value %q", v)
	}
	ms, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed agent lock time %q: %w", parts[2], err)
	}
	return &Holder{JobID: parts[0], JobType: parts[1], AcquiredAt: time.UnixMilli(ms)}, nil
}
