package runner

import (
	"context"
	"sync"

	"github.com/masonbuild/mason/internal/core/domain"
	"github.com/masonbuild/mason/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// stampCache is a read-through cache over a Timestamper, scoped to one
// Runner. Absent results are cached like present ones; the only
// invalidation is the explicit evict after a target's build action.
type stampCache struct {
	ts ports.Timestamper

	mu      sync.Mutex
	entries map[domain.InternedString]domain.Stamp
	flight  singleflight.Group
}

func newStampCache(ts ports.Timestamper) *stampCache {
	return &stampCache{
		ts:      ts,
		entries: make(map[domain.InternedString]domain.Stamp),
	}
}

// get returns the cached stamp for path, consulting the provider at most
// once per cache fill even under concurrent callers.
func (c *stampCache) get(ctx context.Context, path domain.InternedString) (domain.Stamp, error) {
	c.mu.Lock()
	if stamp, ok := c.entries[path]; ok {
		c.mu.Unlock()
		return stamp, nil
	}
	c.mu.Unlock()

	v, err, _ := c.flight.Do(path.String(), func() (any, error) {
		stamp, err := c.ts.Stamp(ctx, path.String())
		if err != nil {
			return domain.Stamp{}, err
		}
		c.mu.Lock()
		c.entries[path] = stamp
		c.mu.Unlock()
		return stamp, nil
	})
	if err != nil {
		return domain.Stamp{}, err
	}
	return v.(domain.Stamp), nil
}

// evict drops any cached stamp for path, forcing the next get to re-query
// the provider.
func (c *stampCache) evict(path domain.InternedString) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}
