package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"textstats/internal/domain"
)

// ReportCache is a bounded LRU of statistics keyed by content hash.
type ReportCache struct {
	mu      sync.RWMutex
	entries map[string]domain.Stats
	order   []string
	maxSize int
}

func NewReportCache(maxSize int) *ReportCache {
	if maxSize <= 0 {
		maxSize = 256
	}
	return &ReportCache{
		entries: make(map[string]domain.Stats),
		order:   make([]string, 0, maxSize),
		maxSize: maxSize,
	}
}

// ContentHash returns the hex sha256 of text.
func ContentHash(text string) string {
	hash := sha256.Sum256([]byte(text))
	return hex.EncodeToString(hash[:])
}

func (c *ReportCache) Get(hash string) (domain.Stats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats, exists := c.entries[hash]
	if !exists {
		return domain.Stats{}, false
	}
	c.moveToEnd(hash)

	return stats, true
}

func (c *ReportCache) Put(hash string, stats domain.Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[hash]; exists {
		c.entries[hash] = stats
		c.moveToEnd(hash)
		return
	}

	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[hash] = stats
	c.order = append(c.order, hash)
}

func (c *ReportCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]domain.Stats)
	c.order = c.order[:0]
}

func (c *ReportCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ReportCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

func (c *ReportCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.order = append(c.order, key)
}

// Analyzer is the part of the analyzer the cache wraps.
type Analyzer interface {
	Analyze(text string) domain.Stats
}

// CachedAnalyzer memoizes Analyze by content hash.
type CachedAnalyzer struct {
	analyzer Analyzer
	cache    *ReportCache
}

func NewCachedAnalyzer(analyzer Analyzer, cache *ReportCache) *CachedAnalyzer {
	return &CachedAnalyzer{
		analyzer: analyzer,
		cache:    cache,
	}
}

func (a *CachedAnalyzer) Analyze(text string) domain.Stats {
	stats, _ := a.AnalyzeHashed(ContentHash(text), text)
	return stats
}

// AnalyzeHashed is Analyze for callers that already hold the content hash.
// The boolean reports a cache hit.
func (a *CachedAnalyzer) AnalyzeHashed(hash, text string) (domain.Stats, bool) {
	if stats, hit := a.cache.Get(hash); hit {
		return stats, true
	}

	stats := a.analyzer.Analyze(text)
	a.cache.Put(hash, stats)

	return stats, false
}
