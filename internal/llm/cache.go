package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// cacheEntry represents a cached extraction result.
type cacheEntry struct {
	expiry     time.Time
	extraction Extraction
}

// extractionCache provides thread-safe TTL caching of extraction results so
// a repeated sentence does not cost a second backend round trip.
type extractionCache struct {
	entries map[string]cacheEntry
	stopCh  chan struct{}
	ttl     time.Duration
	mu      sync.RWMutex
}

// newExtractionCache creates a cache with the specified TTL.
func newExtractionCache(ttl time.Duration) *extractionCache {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}

	cache := &extractionCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}

	go cache.cleanup()

	return cache
}

// cacheKey derives a stable key from the request inputs. The category list
// is part of the key: the same sentence against different category sets can
// legitimately extract differently.
func cacheKey(text, languageHint string, categories []string) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	h.Write([]byte(languageHint))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(categories, "\x00")))
	return hex.EncodeToString(h.Sum(nil))
}

// get retrieves an extraction if present and not expired.
func (c *extractionCache) get(key string) (Extraction, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists || time.Now().After(entry.expiry) {
		return Extraction{}, false
	}

	return entry.extraction, true
}

// set stores an extraction result.
func (c *extractionCache) set(key string, extraction Extraction) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		extraction: extraction,
		expiry:     time.Now().Add(c.ttl),
	}
}

// cleanup periodically removes expired entries.
func (c *extractionCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for key, entry := range c.entries {
				if now.After(entry.expiry) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}

// Close stops the cleanup goroutine.
func (c *extractionCache) Close() {
	close(c.stopCh)
}
