// Copyright 2026 The sketchkit Authors
// SPDX-License-Identifier: MIT

// Package parallel runs independent jobs, such as frame encoding, on a
// fixed set of goroutines.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is returned by Submit after Wait.
var ErrClosed = errors.New("parallel: pool closed")

// Pool runs submitted jobs on a fixed number of workers and keeps the first
// error any job returned.
//
// Submit and Wait are meant to be called from one goroutine: the producer.
type Pool struct {
	workers int
	jobs    chan func() error
	wg      sync.WaitGroup
	running atomic.Bool

	mu  sync.Mutex
	err error
}

// NewPool starts a pool with the given number of workers. If workers is 0
// or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A short queue lets the producer run ahead of the workers without
	// holding many frames in memory.
	queueSize := workers * 2
	if queueSize < 4 {
		queueSize = 4
	}

	p := &Pool{
		workers: workers,
		jobs:    make(chan func() error, queueSize),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		if err := job(); err != nil {
			p.fail(err)
		}
	}
}

func (p *Pool) fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err == nil {
		p.err = err
	}
}

// Submit queues job, blocking while the queue is full. It returns ctx's
// error if ctx ends first, and ErrClosed after Wait.
func (p *Pool) Submit(ctx context.Context, job func() error) error {
	if !p.running.Load() {
		return ErrClosed
	}
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the first job error so far, or nil.
func (p *Pool) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Wait stops accepting jobs, waits for the queued ones to finish and
// returns the first job error. Wait is safe to call more than once.
func (p *Pool) Wait() error {
	if p.running.CompareAndSwap(true, false) {
		close(p.jobs)
	}
	p.wg.Wait()
	return p.Err()
}

// Workers returns the number of workers.
func (p *Pool) Workers() int { return p.workers }
