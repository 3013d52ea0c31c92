package loader

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cached memoizes the fragments returned by another loader. Concurrent
// loads of the same path share one call to the underlying loader. Failed
// loads are not cached.
type Cached struct {
	next  Loader
	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]string
}

// NewCached returns a Cached wrapping next.
func NewCached(next Loader) *Cached {
	return &Cached{next: next, cache: make(map[string]string)}
}

// Load implements [parser.IncludeLoader].
func (c *Cached) Load(name string) (string, error) {
	if text, ok := c.lookup(name); ok {
		return text, nil
	}

	v, err, _ := c.group.Do(name, func() (any, error) {
		text, err := c.next.Load(name)

		return c.fill(name, text, err)
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// LoadContext implements [parser.AsyncIncludeLoader]. A caller whose ctx is
// canceled stops waiting; the shared load itself runs to completion for the
// remaining callers.
func (c *Cached) LoadContext(ctx context.Context, name string) (string, error) {
	if text, ok := c.lookup(name); ok {
		return text, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(name, func() (any, error) {
		text, err := c.next.LoadContext(shared, name)

		return c.fill(name, text, err)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}

		return res.Val.(string), nil
	}
}

// Len returns the number of cached fragments.
func (c *Cached) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cache)
}

func (c *Cached) lookup(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	text, ok := c.cache[name]

	return text, ok
}

func (c *Cached) fill(name, text string, err error) (any, error) {
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cache[name] = text
	c.mu.Unlock()

	return text, nil
}
