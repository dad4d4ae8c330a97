// Package querycache keeps one entry per resource key, de-duplicates
// concurrent reads of the same key and lets mutations invalidate or patch
// entries. Entries never expire on their own; invalidation is the only
// freshness mechanism.
package querycache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/yigit/weddingsite/internal/pkg/logger"
	"github.com/yigit/weddingsite/internal/pkg/notify"
)

// Options configures a Cache.
type Options struct {
	// MaxRetries bounds the retries of a failing read under the default policy.
	MaxRetries int
	// RetryDelay is the first backoff delay; it doubles per failure.
	RetryDelay time.Duration
	// Notifier receives mutation toasts; nil discards them.
	Notifier notify.Notifier
	// OnInvalidate, when set, is called with the prefixes of every Invalidate
	// call after the cache lock is released.
	OnInvalidate func(prefixes []Key)
}

// Cache is a process-local resource cache. Construct one per process (or per
// test) and pass it to the services that read through it.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry

	flights singleflight.Group

	retry        RetryPolicy
	retryDelay   time.Duration
	notifier     notify.Notifier
	onInvalidate func(prefixes []Key)
	logger       zerolog.Logger
}

type entry struct {
	key       Key
	value     interface{}
	fresh     bool
	gen       uint64
	updatedAt time.Time
}

// New creates an empty Cache.
func New(opts Options) *Cache {
	return &Cache{
		entries:      make(map[string]*entry),
		retry:        DefaultRetryPolicy(opts.MaxRetries),
		retryDelay:   opts.RetryDelay,
		notifier:     opts.Notifier,
		onInvalidate: opts.OnInvalidate,
		logger:       logger.Component("querycache"),
	}
}

// ReadOption customises a single Fetch.
type ReadOption func(*readConfig)

type readConfig struct {
	retry RetryPolicy
}

// WithRetry overrides the retry policy for one read.
func WithRetry(policy RetryPolicy) ReadOption {
	return func(cfg *readConfig) {
		cfg.retry = policy
	}
}

// Fetch returns the fresh cached value for key or calls fetch, caches its
// result and returns it. Concurrent callers for the same stale key share one call.
func Fetch[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error), opts ...ReadOption) (T, error) {
	var zero T

	value, err := c.read(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fetch(ctx)
	}, opts...)
	if err != nil {
		return zero, err
	}

	typed, ok := value.(T)
	if !ok {
		return zero, fmt.Errorf("cached value for %s has type %T", key, value)
	}
	return typed, nil
}

// Peek returns the cached value for key without fetching.
func Peek[T any](c *Cache, key Key) (T, bool) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.id()]
	if !ok || !e.fresh {
		return zero, false
	}
	typed, ok := e.value.(T)
	return typed, ok
}

// UpdateData patches the cached value for key in place. It reports false and
// leaves the cache untouched when key has no fresh value of type T.
func UpdateData[T any](c *Cache, key Key, update func(current T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.id()]
	if !ok || !e.fresh {
		return false
	}
	current, ok := e.value.(T)
	if !ok {
		return false
	}

	e.value = update(current)
	e.updatedAt = time.Now()
	c.logger.Debug().Stringer("key", key).Msg("Cache entry patched")
	return true
}

// SetData stores value as the fresh entry for key. Any fetch already in flight
// for key will not overwrite it.
func (c *Cache) SetData(key Key, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entryLocked(key)
	e.gen++
	e.value = value
	e.fresh = true
	e.updatedAt = time.Now()
}

// Invalidate marks every entry whose key starts with one of prefixes as stale
// and returns how many fresh entries were dropped. Fetches in flight for those
// keys will not repopulate the cache.
func (c *Cache) Invalidate(prefixes ...Key) int {
	dropped := c.invalidate(prefixes)
	if c.onInvalidate != nil {
		c.onInvalidate(prefixes)
	}
	return dropped
}

func (c *Cache) invalidate(prefixes []Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := 0
	for _, e := range c.entries {
		for _, prefix := range prefixes {
			if !e.key.HasPrefix(prefix) {
				continue
			}
			if e.fresh {
				dropped++
				cacheInvalidations.WithLabelValues(e.key.Resource()).Inc()
			}
			e.fresh = false
			e.value = nil
			e.gen++
			break
		}
	}

	c.logger.Debug().Int("dropped", dropped).Int("prefixes", len(prefixes)).Msg("Cache invalidated")
	return dropped
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*entry)
}

func (c *Cache) entryLocked(key Key) *entry {
	id := key.id()
	e, ok := c.entries[id]
	if !ok {
		e = &entry{key: append(Key(nil), key...)}
		c.entries[id] = e
	}
	return e
}

func (c *Cache) read(ctx context.Context, key Key, fetch func(context.Context) (interface{}, error), opts ...ReadOption) (interface{}, error) {
	cfg := readConfig{retry: c.retry}
	for _, opt := range opts {
		opt(&cfg)
	}

	c.mu.Lock()
	e := c.entryLocked(key)
	if e.fresh {
		value := e.value
		c.mu.Unlock()
		cacheHits.WithLabelValues(key.Resource()).Inc()
		return value, nil
	}
	gen := e.gen
	c.mu.Unlock()
	cacheMisses.WithLabelValues(key.Resource()).Inc()

	// The generation is part of the flight key so a read after an
	// invalidation never joins a fetch that started before it.
	flightKey := key.id() + "\x00#" + strconv.FormatUint(gen, 10)
	ch := c.flights.DoChan(flightKey, func() (interface{}, error) {
		value, err := c.fetchWithRetry(context.WithoutCancel(ctx), key, fetch, cfg.retry)
		if err != nil {
			return nil, err
		}
		c.store(e, gen, value)
		return value, nil
	})

	waiting := cacheWaiting.WithLabelValues(key.Resource())
	waiting.Inc()
	defer waiting.Dec()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func (c *Cache) fetchWithRetry(ctx context.Context, key Key, fetch func(context.Context) (interface{}, error), policy RetryPolicy) (interface{}, error) {
	failures := 0
	for {
		cacheFetches.WithLabelValues(key.Resource()).Inc()
		value, err := fetch(ctx)
		if err == nil {
			return value, nil
		}

		failures++
		if !policy(failures, err) {
			cacheFetchErrors.WithLabelValues(key.Resource()).Inc()
			c.logger.Debug().Err(err).Stringer("key", key).Int("failures", failures).Msg("Cache fetch failed")
			return nil, err
		}

		delay := backoff(c.retryDelay, failures)
		c.logger.Debug().Err(err).Stringer("key", key).Int("failures", failures).Dur("delay", delay).Msg("Retrying cache fetch")
		if err := sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// store saves a fetched value unless the entry was invalidated, replaced or
// cleared while the fetch was running.
func (c *Cache) store(e *entry, gen uint64, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries[e.key.id()] != e || e.gen != gen {
		return
	}
	e.value = value
	e.fresh = true
	e.updatedAt = time.Now()
}

// DefaultRetry returns the retry policy reads use unless overridden.
func (c *Cache) DefaultRetry() RetryPolicy {
	return c.retry
}
