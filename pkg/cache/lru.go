package cache

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU is a fixed-size least-recently-used cache that counts hits and
// misses. It is safe for concurrent use.
type LRU[K comparable, V any] struct {
	c      *lru.Cache[K, V]
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats is a point-in-time view of cache usage.
type Stats struct {
	Len    int
	Hits   uint64
	Misses uint64
}

func NewLRU[K comparable, V any](size int) (*LRU[K, V], error) {
	c, err := lru.New[K, V](size)
	if err != nil {
		return nil, err
	}
	return &LRU[K, V]{c: c}, nil
}

func (l *LRU[K, V]) Get(key K) (V, bool) {
	v, ok := l.c.Get(key)
	if ok {
		l.hits.Add(1)
	} else {
		l.misses.Add(1)
	}
	return v, ok
}

// Add stores value under key and reports whether an older entry was evicted.
func (l *LRU[K, V]) Add(key K, value V) bool {
	return l.c.Add(key, value)
}

func (l *LRU[K, V]) Len() int {
	return l.c.Len()
}

func (l *LRU[K, V]) Purge() {
	l.c.Purge()
}

func (l *LRU[K, V]) Stats() Stats {
	return Stats{Len: l.c.Len(), Hits: l.hits.Load(), Misses: l.misses.Load()}
}
