// Package reactive provides observable state cells: a value plus the
// subscribers notified whenever it is written.
package reactive

import (
	"slices"
	"sync"
)

// Cell holds a value of type T and notifies subscribers on every Set.
type Cell[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   map[int]func(T)
}

// NewCell creates a cell holding initial.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial, subs: make(map[int]func(T))}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set stores v and calls every subscriber with it, in subscription order.
// Subscribers run on the writer's goroutine after the cell lock is released.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	subs := c.snapshot()
	c.mu.Unlock()
	for _, fn := range subs {
		fn(v)
	}
}

// Subscribe registers fn and returns a function that removes it.
func (c *Cell[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()
	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}

// Subscribers reports how many subscribers are registered.
func (c *Cell[T]) Subscribers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

func (c *Cell[T]) snapshot() []func(T) {
	if len(c.subs) == 0 {
		return nil
	}
	ids := make([]int, 0, len(c.subs))
	for id := range c.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]func(T), len(ids))
	for i, id := range ids {
		out[i] = c.subs[id]
	}
	return out
}

// View is the read side of a cell, handed to renderers so the owner stays the
// sole writer.
type View[T any] interface {
	Get() T
	Subscribe(func(T)) func()
}
