package safepool

import "sync"

// A Pool is a type-safe wrapper around a sync.Pool.
type Pool[T any] struct {
	p *sync.Pool
}

// NewPool constructs a new Pool. The provided function builds a fresh value
// whenever the pool is empty.
func NewPool[T any](fn func() *T) Pool[T] {
	return Pool[T]{p: &sync.Pool{
		New: func() any {
			return fn()
		},
	}}
}

// Get retrieves a *T from the pool, creating one if necessary.
func (p Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

// Put adds t to the pool. The caller must not use t afterwards.
func (p Pool[T]) Put(t *T) {
	p.p.Put(t)
}
