package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const reportCacheKeyPrefix = "liftcoach-weekly-report||"

// Cache keeps generated weekly reports in redis so repeated report opens
// within the TTL skip the full analyzer run.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		rdb: rdb,
		ttl: ttl,
	}
}

func (c *Cache) Get(ctx context.Context, userID string) (*WeeklyAdaptationReport, error) {
	reportJson, err := c.rdb.Get(ctx, reportCacheKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached report: %w", err)
	}

	var cached WeeklyAdaptationReport
	if err := json.Unmarshal(reportJson, &cached); err != nil {
		return nil, fmt.Errorf("unmarshal cached report: %w", err)
	}
	return &cached, nil
}

func (c *Cache) Set(ctx context.Context, userID string, weeklyReport *WeeklyAdaptationReport) error {
	reportJson, err := json.Marshal(weeklyReport)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := c.rdb.Set(ctx, reportCacheKeyPrefix+userID, reportJson, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached report: %w", err)
	}
	return nil
}

// Invalidate drops the cached report, called when new data arrives.
func (c *Cache) Invalidate(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, reportCacheKeyPrefix+userID).Err()
}
