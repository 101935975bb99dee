// Package workerpool runs context-aware tasks across a fixed set of goroutines.
package workerpool

import (
	"context"
	"sync"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

type Pool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
	once    sync.Once
}

// New creates a pool. buffer sizes the task queue; Submit blocks once it is
// full and no worker is free.
func New(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *Pool) Workers() int {
	if p == nil {
		return 0
	}
	return p.workers
}

// Submit queues t, giving up when ctx is done.
func (p *Pool) Submit(ctx context.Context, t Task) error {
	if p == nil || t == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.tasks <- t:
		return nil
	}
}

// Close signals that no more tasks will be submitted. Safe to call twice.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.once.Do(func() { close(p.tasks) })
}

// Run starts the workers. The returned channel yields one Result per executed
// task and is closed once every worker has exited.
func (p *Pool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					if t == nil {
						continue
					}
					err := t(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}

// Wait drains results and returns the first task error, or ctx's error when
// the run was cut short.
func Wait(ctx context.Context, results <-chan Result) error {
	var firstErr error
	for r := range results {
		if r.Err != nil && firstErr == nil {
			firstErr = r.Err
		}
	}
	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
