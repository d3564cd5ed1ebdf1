package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/luay-ju/formilon-project/internal/analytics"
	"github.com/luay-ju/formilon-project/internal/model"
)

// ResultsCache handles Redis operations for computed analytics reports.
// Reports are cached per form and per filter combination; a new
// submission invalidates every cached report for its form.
//
// Cached reports are returned as raw JSON rather than decoded structs:
// the analysis payload is polymorphic over question type and the only
// consumers of a cache hit write it straight back out.
type ResultsCache interface {
	GetReport(ctx context.Context, formID string, filters model.FilterSet) (json.RawMessage, error)
	SetReport(ctx context.Context, formID string, filters model.FilterSet, report *analytics.Report) error
	Invalidate(ctx context.Context, formID string) error
}

type resultsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultsCache creates a new results cache
func NewResultsCache(client *redis.Client, ttl time.Duration) ResultsCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &resultsCache{
		client: client,
		ttl:    ttl,
	}
}

// Key helpers
func (c *resultsCache) reportKey(formID string, filters model.FilterSet) string {
	return fmt.Sprintf("form:%s:results:%s", formID, filterKey(filters))
}

func (c *resultsCache) reportPattern(formID string) string {
	return fmt.Sprintf("form:%s:results:*", formID)
}

// filterKey hashes the canonical filter form so arbitrary filter
// combinations stay within Redis key length limits.
func filterKey(filters model.FilterSet) string {
	canonical := filters.Canonical()
	if canonical == "" {
		return "all"
	}
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

func (c *resultsCache) GetReport(ctx context.Context, formID string, filters model.FilterSet) (json.RawMessage, error) {
	data, err := c.client.Get(ctx, c.reportKey(formID, filters)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (c *resultsCache) SetReport(ctx context.Context, formID string, filters model.FilterSet, report *analytics.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.reportKey(formID, filters), data, c.ttl).Err()
}

func (c *resultsCache) Invalidate(ctx context.Context, formID string) error {
	keys, err := c.client.Keys(ctx, c.reportPattern(formID)).Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
