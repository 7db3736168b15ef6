package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import "sync"

// cacheKey identifies one resolved document (or document fragment): the
// document URL without its fragment part, plus the fragment (or the root
// element's id for whole-document entries).
type cacheKey struct {
	url      string
	fragment string
}

// A Cache remembers resolved trees across reference loads. Clients may
// share one cache between top-level conversions; loads within a single
// conversion always share one.
//
// A cache hit returns the previously parsed element and its stylesheet
// matchers; attribute resolution still runs per load, so cached entries
// never leak resolved state between referencing contexts.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]*Tree
}

// NewCache creates an empty reference cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*Tree)}
}

func (c *Cache) get(key cacheKey) (*Tree, bool) {
	if c == nil {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.entries[key]
	return t, ok
}

func (c *Cache) put(key cacheKey, t *Tree) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = t
}
