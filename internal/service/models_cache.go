package service

import (
	"sync"
	"time"

	"github.com/klimatech/acbot/internal/domain"
)

// CatalogCache keeps the last model catalog response for a short TTL so the
// discovery tier does not hammer the listing endpoint.
type CatalogCache struct {
	mu       sync.RWMutex
	models   []domain.CatalogModel
	cachedAt time.Time
	ttl      time.Duration
}

func NewCatalogCache(ttl time.Duration) *CatalogCache {
	return &CatalogCache{ttl: ttl}
}

func (c *CatalogCache) Get() []domain.CatalogModel {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.models == nil || time.Since(c.cachedAt) > c.ttl {
		return nil
	}
	return c.models
}

func (c *CatalogCache) Set(models []domain.CatalogModel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.models = models
	c.cachedAt = time.Now()
}
