// Package pool provides a typed sync.Pool that resets items on return.
package pool

import "sync"

// Pool is a typed wrapper around sync.Pool.
type Pool[T any] struct {
	internal sync.Pool
	reset    func(T)
}

// New creates a Pool. reset, if non-nil, is applied to every item handed
// back with Put so that Get never returns stale state.
func New[T any](newFn func() T, reset func(T)) *Pool[T] {
	return &Pool[T]{
		internal: sync.Pool{
			New: func() any {
				return newFn()
			},
		},
		reset: reset,
	}
}

// Get retrieves an item from the pool, constructing one if it is empty.
func (p *Pool[T]) Get() T {
	return p.internal.Get().(T)
}

// Put resets item and returns it to the pool.
func (p *Pool[T]) Put(item T) {
	if p.reset != nil {
		p.reset(item)
	}
	p.internal.Put(item)
}
