// Package workerpool provides a fixed-size task executor with join-all
// semantics: Submit blocks once all slots are busy, and WaitAll blocks
// until every outstanding task has finished. It exists to gate how many
// MCTS search trees run concurrently; it is not meant to outlive a single
// search call.
package workerpool

import (
	"context"

	"golang.org/x/sync/semaphore"
)

// Pool is a bounded-concurrency gate. The zero value is not usable; use
// New.
type Pool struct {
	sem *semaphore.Weighted
	n   int64
}

// New returns a pool that runs at most n tasks concurrently. Panics if n
// is not positive.
func New(n int) *Pool {
	if n <= 0 {
		panic("workerpool: n must be positive")
	}
	return &Pool{sem: semaphore.NewWeighted(int64(n)), n: int64(n)}
}

// Submit runs task in its own goroutine once a slot is free, blocking the
// caller until one is. The caller does not wait for task to finish; use
// WaitAll for that.
func (p *Pool) Submit(task func()) {
	// Background is correct here: the pool has no cancellation path of
	// its own (the engine's time budget is enforced inside each worker,
	// not by the pool), so Acquire can only block, never be canceled.
	if err := p.sem.Acquire(context.Background(), 1); err != nil {
		panic(err)
	}
	go func() {
		defer p.sem.Release(1)
		task()
	}()
}

// WaitAll blocks until every task submitted so far has completed.
func (p *Pool) WaitAll() {
	if err := p.sem.Acquire(context.Background(), p.n); err != nil {
		panic(err)
	}
	p.sem.Release(p.n)
}
