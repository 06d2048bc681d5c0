// Package cache implements the report list cache on Redis.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker"

	"github.com/madrasah-erp/finance/internal/application/adapter"
)

const keyPrefix = "finance:reports"

// BreakerSettings configures the circuit breaker guarding Redis.
type BreakerSettings struct {
	MaxRequests         uint32
	Interval            time.Duration
	OpenTimeout         time.Duration
	ConsecutiveFailures uint32
}

// DefaultBreakerSettings trips after five consecutive failures and probes again after 30 seconds.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests:         1,
		Interval:            time.Minute,
		OpenTimeout:         30 * time.Second,
		ConsecutiveFailures: 5,
	}
}

// reportListCache implements the adapter.ReportListCache interface.
// Every school has a generation counter; pages are stored under the current generation
// so bumping the counter orphans all of them at once and they expire through their TTL.
type reportListCache struct {
	client  *redis.Client
	cb      *gobreaker.CircuitBreaker
	ttl     time.Duration
	timeout time.Duration
}

// NewReportListCache creates a Redis backed report list cache.
func NewReportListCache(client *redis.Client, ttl, timeout time.Duration, breaker BreakerSettings) adapter.ReportListCache {
	settings := gobreaker.Settings{
		Name:        "report-list-cache",
		MaxRequests: breaker.MaxRequests,
		Interval:    breaker.Interval,
		Timeout:     breaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breaker.ConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &reportListCache{
		client:  client,
		cb:      gobreaker.NewCircuitBreaker(settings),
		ttl:     ttl,
		timeout: timeout,
	}
}

// Get returns the cached page for the query key and the generation it was looked up in.
// Any failure is reported as a miss.
func (c *reportListCache) Get(ctx context.Context, schoolID uuid.UUID, queryKey string) ([]byte, adapter.CacheGeneration, bool) {
	generation := adapter.NoCacheGeneration
	result, err := c.execute(ctx, func(ctx context.Context) (interface{}, error) {
		current, err := c.generation(ctx, schoolID)
		if err != nil {
			return nil, err
		}
		generation = adapter.CacheGeneration(current)

		page, err := c.client.Get(ctx, pageKey(schoolID, current, queryKey)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return page, err
	})
	if err != nil {
		slog.WarnContext(ctx, "Report list cache lookup failed",
			"school_id", schoolID,
			"error", err,
		)
	}

	page, _ := result.([]byte)
	return page, generation, err == nil && page != nil
}

// Set stores a page under the given generation. When the school was invalidated since the
// lookup the page lands under an orphaned generation and is never read.
func (c *reportListCache) Set(ctx context.Context, schoolID uuid.UUID, queryKey string, generation adapter.CacheGeneration, page []byte) {
	if generation < 0 {
		return
	}

	_, err := c.execute(ctx, func(ctx context.Context) (interface{}, error) {
		return nil, c.client.Set(ctx, pageKey(schoolID, int64(generation), queryKey), page, c.ttl).Err()
	})
	if err != nil {
		slog.WarnContext(ctx, "Report list cache store failed",
			"school_id", schoolID,
			"error", err,
		)
	}
}

// Invalidate bumps the generation counter of the school.
func (c *reportListCache) Invalidate(ctx context.Context, schoolID uuid.UUID) error {
	_, err := c.execute(ctx, func(ctx context.Context) (interface{}, error) {
		return nil, c.client.Incr(ctx, generationKey(schoolID)).Err()
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate report list cache: %w", err)
	}
	return nil
}

// execute runs fn through the circuit breaker with the configured timeout.
func (c *reportListCache) execute(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	return c.cb.Execute(func() (interface{}, error) {
		return fn(ctx)
	})
}

func (c *reportListCache) generation(ctx context.Context, schoolID uuid.UUID) (int64, error) {
	generation, err := c.client.Get(ctx, generationKey(schoolID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return generation, err
}

func generationKey(schoolID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:generation", keyPrefix, schoolID)
}

func pageKey(schoolID uuid.UUID, generation int64, queryKey string) string {
	return fmt.Sprintf("%s:%s:%d:%s", keyPrefix, schoolID, generation, queryKey)
}

// noopReportListCache is used when Redis is disabled.
type noopReportListCache struct{}

// NewNoopReportListCache creates a cache that never hits.
func NewNoopReportListCache() adapter.ReportListCache {
	return noopReportListCache{}
}

func (noopReportListCache) Get(context.Context, uuid.UUID, string) ([]byte, adapter.CacheGeneration, bool) {
	return nil, adapter.NoCacheGeneration, false
}

func (noopReportListCache) Set(context.Context, uuid.UUID, string, adapter.CacheGeneration, []byte) {}

func (noopReportListCache) Invalidate(context.Context, uuid.UUID) error { return nil }
