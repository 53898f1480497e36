package engine

import (
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	PolicyLRU   = "lru"
	PolicyReset = "reset"

	DefaultCacheCapacity = 200000
)

var ErrUnknownCachePolicy = errors.New("unknown cache policy")

type Bound uint8

const (
	Exact Bound = iota
	LowerBound
	UpperBound
)

// Entry - a searched position: the depth it was searched to, its score and how the score
// relates to the true value.
type Entry struct {
	Depth int
	Score float64
	Bound Bound
}

// Cache - transposition table shared by every search of an engine. Implementations are safe for
// concurrent use and never expose a partially written entry.
type Cache interface {
	Get(key uint64) (Entry, bool)
	Put(key uint64, entry Entry)
	Len() int
	Purge()
}

func NewCache(policy string, capacity int) (Cache, error) {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}

	switch policy {
	case PolicyLRU, "":
		return NewLRUCache(capacity)
	case PolicyReset:
		return NewResetCache(capacity), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCachePolicy, policy)
	}
}

type lruCache struct {
	entries *lru.Cache[uint64, Entry]
}

// NewLRUCache - evicts the least recently used entry once capacity is reached.
func NewLRUCache(capacity int) (Cache, error) {
	entries, err := lru.New[uint64, Entry](capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}

	return &lruCache{entries: entries}, nil
}

func (that *lruCache) Get(key uint64) (Entry, bool) {
	return that.entries.Get(key)
}

func (that *lruCache) Put(key uint64, entry Entry) {
	that.entries.Add(key, entry)
}

func (that *lruCache) Len() int {
	return that.entries.Len()
}

func (that *lruCache) Purge() {
	that.entries.Purge()
}

type resetCache struct {
	mu       sync.RWMutex
	capacity int
	entries  map[uint64]Entry
}

// NewResetCache - drops every entry at once when the table grows past capacity.
func NewResetCache(capacity int) Cache {
	return &resetCache{
		capacity: capacity,
		entries:  make(map[uint64]Entry),
	}
}

func (that *resetCache) Get(key uint64) (Entry, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	entry, ok := that.entries[key]
	return entry, ok
}

func (that *resetCache) Put(key uint64, entry Entry) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.entries) >= that.capacity {
		clear(that.entries)
	}

	that.entries[key] = entry
}

func (that *resetCache) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.entries)
}

func (that *resetCache) Purge() {
	that.mu.Lock()
	defer that.mu.Unlock()

	clear(that.entries)
}
