package report

import (
	"encoding/json"

	"github.com/coocood/freecache"
)

const (
	quickStatusCacheSize = 256 * 1024
	quickStatusTTLSec    = 60
)

// quickStatusCache is a process-local cache for the widget endpoint,
// which gets hammered on every app foreground.
type quickStatusCache struct {
	cache *freecache.Cache
}

func newQuickStatusCache() *quickStatusCache {
	return &quickStatusCache{
		cache: freecache.NewCache(quickStatusCacheSize),
	}
}

func (c *quickStatusCache) Get(userID string) (*QuickStatus, bool) {
	statusJson, err := c.cache.Get([]byte(userID))
	if err != nil {
		return nil, false
	}
	var status QuickStatus
	if err := json.Unmarshal(statusJson, &status); err != nil {
		return nil, false
	}
	return &status, true
}

func (c *quickStatusCache) Set(userID string, status QuickStatus) {
	statusJson, err := json.Marshal(status)
	if err != nil {
		return
	}
	// best effort, a miss just recomputes
	_ = c.cache.Set([]byte(userID), statusJson, quickStatusTTLSec)
}
