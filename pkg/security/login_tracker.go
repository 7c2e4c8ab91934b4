package security

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-jobboard-api/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

// LoginTrackerConfig holds configuration for login tracking
type LoginTrackerConfig struct {
	MaxAttempts   int           // failed attempts before the email is blocked
	AttemptWindow time.Duration // window the failures are counted in
	BlockDuration time.Duration // how long a block lasts
}

func DefaultLoginTrackerConfig() LoginTrackerConfig {
	return LoginTrackerConfig{
		MaxAttempts:   5,
		AttemptWindow: 15 * time.Minute,
		BlockDuration: 15 * time.Minute,
	}
}

// LoginTracker counts failed logins per email in Redis and blocks the email
// once MaxAttempts is reached inside AttemptWindow. Without Redis it fails
// open: nothing is counted and nobody is blocked.
type LoginTracker struct {
	config LoginTrackerConfig
	logger *SecurityLogger
	client func() *goredis.Client
}

func NewLoginTracker(config LoginTrackerConfig, logger *SecurityLogger) *LoginTracker {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultLoginTrackerConfig().MaxAttempts
	}
	if logger == nil {
		logger = DefaultLogger()
	}
	return &LoginTracker{
		config: config,
		logger: logger,
		client: redis.Client,
	}
}

// Keys use a digest of the normalized email so addresses never land in Redis.
const (
	failLoginPrefix    = "fail:login:"
	blockedLoginPrefix = "blocked:login:"
)

// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns the new count.
const incrWithTTLScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

func subjectKey(email string) string {
	return HashValue(strings.ToLower(strings.TrimSpace(email)))
}

// IsBlocked reports whether logins for email are currently refused.
func (lt *LoginTracker) IsBlocked(ctx context.Context, email string) (bool, error) {
	client := lt.client()
	if client == nil {
		return false, nil
	}

	exists, err := client.Exists(ctx, blockedLoginPrefix+subjectKey(email)).Result()
	if err != nil {
		return false, fmt.Errorf("check login block: %w", err)
	}
	return exists > 0, nil
}

// RecordFailedAttempt counts a failure and blocks the email when the limit is
// reached. It returns whether the email is now blocked and the failure count.
func (lt *LoginTracker) RecordFailedAttempt(ctx context.Context, email string, meta RequestMeta) (bool, int, error) {
	lt.logger.LogLoginFailed(ctx, email, meta, "invalid_credentials")

	client := lt.client()
	if client == nil {
		return false, 0, nil
	}

	key := subjectKey(email)
	ttlSeconds := int(lt.config.AttemptWindow.Seconds())
	result, err := client.Eval(ctx, incrWithTTLScript, []string{failLoginPrefix + key}, ttlSeconds).Result()
	if err != nil {
		return false, 0, fmt.Errorf("count failed login: %w", err)
	}
	count, ok := result.(int64)
	if !ok {
		return false, 0, errors.New("unexpected result type from Lua script")
	}

	if int(count) < lt.config.MaxAttempts {
		return false, int(count), nil
	}

	if err := client.Set(ctx, blockedLoginPrefix+key, "1", lt.config.BlockDuration).Err(); err != nil {
		return false, int(count), fmt.Errorf("set login block: %w", err)
	}
	lt.logger.LogLoginBlocked(ctx, email, meta, int(count))
	return true, int(count), nil
}

// ClearAttempts resets the failure counter after a successful login.
func (lt *LoginTracker) ClearAttempts(ctx context.Context, email string) error {
	client := lt.client()
	if client == nil {
		return nil
	}
	if err := client.Del(ctx, failLoginPrefix+subjectKey(email)).Err(); err != nil {
		return fmt.Errorf("clear failed logins: %w", err)
	}
	return nil
}
