// Package cache holds freshly rendered artifacts in memory just long enough
// for a client to download them by token. Entries die by absolute time, not
// capacity pressure, so the store is an unbounded-but-swept map.
package cache

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Entry is one cached artifact. Payload is written once at insertion and
// never mutated afterward.
type Entry struct {
	Payload   []byte
	Filename  string
	MIMEType  string
	ExpiresAt time.Time
}

// Cache is a concurrency-safe, TTL-bounded artifact store. It is constructed
// empty at process start and shared by reference between the tool-invocation
// path (writer) and the download path (reader). Nothing is persisted; on
// restart all outstanding tokens become invalid by design.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]*Entry

	// now is swappable in tests
	now func() time.Time
}

// New creates an empty cache whose entries live for ttl after insertion.
func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]*Entry),
		now:     time.Now,
	}
}

// Put stores an artifact and returns the opaque token under which it can be
// fetched. Tokens carry 128 bits of entropy, so possession of a token is the
// only access control the download path needs. Safe for concurrent use.
func (c *Cache) Put(payload []byte, filename, mimeType string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	token := newToken()
	for _, exists := c.entries[token]; exists; _, exists = c.entries[token] {
		token = newToken()
	}

	c.entries[token] = &Entry{
		Payload:   payload,
		Filename:  filename,
		MIMEType:  mimeType,
		ExpiresAt: c.now().Add(c.ttl),
	}
	return token
}

// Get returns the entry for token, or (nil, false) when the token is unknown
// or the entry has expired. An expired entry is removed on the way out, so a
// lookup doubles as a reaper for the key it touches.
func (c *Cache) Get(token string) (*Entry, bool) {
	c.mu.RLock()
	entry, ok := c.entries[token]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; another reader may have raced us.
		if current, still := c.entries[token]; still && current == entry {
			delete(c.entries, token)
		}
		c.mu.Unlock()
		return nil, false
	}

	return entry, true
}

// Sweep removes every expired entry. Correctness never depends on it (Get
// hides dead entries on its own); it only bounds memory growth, so it runs
// opportunistically once per tool invocation rather than on a timer.
func (c *Cache) Sweep() {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	for token, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, token)
		}
	}
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// newToken returns 16 bytes from the OS entropy source as 32 hex characters.
// rand.Read failing means the process has lost its entropy source entirely,
// which is not a recoverable state.
func newToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("cache: reading random token bytes: %v", err))
	}
	return hex.EncodeToString(buf)
}
