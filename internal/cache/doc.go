// Package cache provides a bounded, thread-safe LRU cache.
//
//	c := cache.New[string, int](100)
//	v := c.GetOrCreate("key", func() int { return 42 })
//
// LRU is safe for concurrent use and must not be copied after creation.
package cache
