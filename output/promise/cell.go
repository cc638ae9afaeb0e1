// Package promise provides a single-assignment, multi-reader future used to
// back each of an Output's lazy fields.
//
// A Cell resolves exactly once and is safe to await from any number of
// goroutines, before or after resolution. It generalizes the
// sync.Once-guarded "compute once, read many times" idiom for synchronous
// lazy memoization to the asynchronous case, where the value may be produced
// by a goroutine other than the reader's.
package promise

import (
	"context"
	"sync"
)

// Cell is a single-assignment future holding a value of type T or an
// error. Resolve must be called at most once; every call to Await, from any
// goroutine, observes the same (value, error) pair once resolution happens.
type Cell[T any] struct {
	mu       sync.Mutex
	done     chan struct{}
	resolved bool
	value    T
	err      error
}

// New returns an unresolved Cell.
func New[T any]() *Cell[T] {
	return &Cell[T]{done: make(chan struct{})}
}

// Resolved returns a Cell that is already resolved with v and no error.
func Resolved[T any](v T) *Cell[T] {
	c := New[T]()
	c.Resolve(v, nil)
	return c
}

// Failed returns a Cell that is already resolved with the zero value and
// the given error.
func Failed[T any](err error) *Cell[T] {
	c := New[T]()
	var zero T
	c.Resolve(zero, err)
	return c
}

// Resolve assigns the Cell's final value and error, waking every current
// and future caller of Await. Calling Resolve more than once on the same
// Cell is a programming error within this package and panics; Cell is an
// internal building block, not the user-facing Deferred type, which has its
// own explicit double-resolve error.
func (c *Cell[T]) Resolve(v T, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resolved {
		panic("promise: cell resolved more than once")
	}

	c.value = v
	c.err = err
	c.resolved = true
	close(c.done)
}

// Await blocks until the Cell resolves or ctx is done, whichever happens
// first.
func (c *Cell[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-c.done:
		c.mu.Lock()
		v, err := c.value, c.err
		c.mu.Unlock()
		return v, err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
