package report

import "sync"

// Cache holds analyzed reports in memory. Nothing is persisted: a
// restart forgets past analyses, matching the app's no-history model.
type Cache struct {
	mu      sync.RWMutex
	reports map[string]*Report
}

func NewCache() *Cache {
	return &Cache{reports: make(map[string]*Report)}
}

func (c *Cache) Put(r *Report) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports[r.ID] = r
}

func (c *Cache) Get(id string) (*Report, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.reports[id]
	return r, ok
}
