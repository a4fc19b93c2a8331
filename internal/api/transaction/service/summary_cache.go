package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/pkg/redis"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"golang.org/x/net/context"
)

const defaultSummaryTTL = 5 * time.Minute

// summaryCache stores summaries under a per-user version. Writes bump the
// version, which orphans every summary cached for that user. Keys carry the
// store epoch so a store that starts empty never reads another one's entries.
type summaryCache struct {
	client redis.IRedis
	ttl    time.Duration
	prefix string

	// stale holds users whose last version bump failed. Their cache is not
	// read until a retried bump succeeds.
	stale sync.Map
}

func newSummaryCache(client redis.IRedis, ttl time.Duration, epoch string) *summaryCache {
	if ttl <= 0 {
		ttl = defaultSummaryTTL
	}

	prefix := "summary:"
	if epoch != "" {
		prefix += epoch + ":"
	}

	return &summaryCache{client: client, ttl: ttl, prefix: prefix}
}

func (c *summaryCache) versionKey(userID string) string {
	return c.prefix + "version:" + userID
}

func (c *summaryCache) entryKey(userID string, version int64, opts transaction.FilterOptions) string {
	sum := sha1.Sum([]byte(opts.Key()))
	return fmt.Sprintf("%s%s:%d:%s", c.prefix, userID, version, hex.EncodeToString(sum[:]))
}

func (c *summaryCache) version(ctx context.Context, userID string) (int64, error) {
	if _, ok := c.stale.Load(userID); ok {
		version, err := c.client.Incr(ctx, c.versionKey(userID))
		if err != nil {
			return 0, err
		}
		c.stale.Delete(userID)
		return version, nil
	}
	return c.client.GetInt(ctx, c.versionKey(userID))
}

func (c *summaryCache) get(ctx context.Context, userID string, version int64, opts transaction.FilterOptions) (Summary, bool, error) {
	var summary Summary
	ok, err := c.client.GetJSON(ctx, c.entryKey(userID, version, opts), &summary)
	if err != nil || !ok {
		return Summary{}, false, err
	}
	return summary, true, nil
}

func (c *summaryCache) set(ctx context.Context, userID string, version int64, opts transaction.FilterOptions, summary Summary) error {
	return c.client.SetJSON(ctx, c.entryKey(userID, version, opts), summary, c.ttl)
}

func (c *summaryCache) invalidate(ctx context.Context, userID string) error {
	if _, err := c.client.Incr(ctx, c.versionKey(userID)); err != nil {
		c.stale.Store(userID, struct{}{})
		return err
	}
	c.stale.Delete(userID)
	return nil
}
