package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mahawer/mahawer-api/internal/api/middleware"
	"github.com/mahawer/mahawer-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// RateLimitRepository applies a sliding-window limit keyed by caller identity:
// email for login attempts, client IP for the public submission endpoints.
type RateLimitRepository interface {
	CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error)
	CheckSubmissionRateLimit(ctx context.Context, ip string) (bool, int, error)
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.Config
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("addr", fmt.Sprintf("%s:%s", cfg.RedisConnect.Host, cfg.RedisConnect.Port)))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	opt.DB = cfg.RedisConnect.DB

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("Successfully connected to Redis")

	return client, nil
}

func NewRateLimitRepo(client *redis.Client, cfg *config.Config) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg}
}

// CheckLoginRateLimit returns isAllowed, attempts left and seconds to wait.
func (r *redisRepository) CheckLoginRateLimit(ctx context.Context, email string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := fmt.Sprintf("login_attempts:%s", email)

	allowed, attempts, retryAfter, err := r.slidingWindow(ctx, key)
	if err != nil {
		return false, 0, 0, err
	}

	remaining := r.cfg.RateConfig.MaxAttempts - attempts
	if remaining < 0 {
		remaining = 0
	}

	if !allowed {
		logger.Warn("Login rate limit exceeded", slog.String("email", email), slog.Int64("attempts", attempts))
		return false, 0, retryAfter, nil
	}

	logger.Debug("Login rate limit check passed", slog.String("email", email), slog.Int64("attempts", attempts))

	return true, int(remaining), 0, nil
}

// CheckSubmissionRateLimit guards the public inquiry and contact endpoints.
func (r *redisRepository) CheckSubmissionRateLimit(ctx context.Context, ip string) (bool, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := fmt.Sprintf("submission_attempts:%s", ip)

	allowed, attempts, retryAfter, err := r.slidingWindow(ctx, key)
	if err != nil {
		return false, 0, err
	}

	if !allowed {
		logger.Warn("Submission rate limit exceeded", slog.String("ip", ip), slog.Int64("attempts", attempts))
		return false, retryAfter, nil
	}

	return true, 0, nil
}

// slidingWindow records one attempt under key and reports whether the count
// within the configured window stays under the limit. A single pipeline keeps
// the bookkeeping to one round trip.
func (r *redisRepository) slidingWindow(ctx context.Context, key string) (bool, int64, int, error) {

	now := time.Now().Unix()
	windowStart := now - int64(r.cfg.RateConfig.WindowSize.Seconds())

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.RateConfig.WindowSize)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts >= r.cfg.RateConfig.MaxAttempts {

		oldestScoreCmd := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{
			Key: key, Start: 0, Stop: 0,
		})

		scores, err := oldestScoreCmd.Result()
		if err != nil || len(scores) == 0 {
			return false, attempts, int(r.cfg.RateConfig.WindowSize.Seconds()), nil
		}

		oldestTimestamp := int64(scores[0].Score)

		retryAfter := max((oldestTimestamp+int64(r.cfg.RateConfig.WindowSize.Seconds()))-now, 0)

		return false, attempts, int(retryAfter), nil
	}

	return true, attempts, 0, nil
}
