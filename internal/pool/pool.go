// Package pool runs jobs on a fixed set of goroutines fed by one shared,
// unbounded queue.
package pool

import (
	"fmt"
	"sync"

	"conway/internal/core"

	"golang.org/x/sync/errgroup"
)

// message is either a job or, when job is nil, a request for the receiving
// worker to exit.
type message struct {
	job func()
}

// Pool is a fixed-size worker pool. Close must be called to release the
// workers; it blocks until all of them have returned.
type Pool struct {
	size int

	mu     sync.Mutex
	ready  *sync.Cond
	queue  []message
	closed bool

	workers   errgroup.Group
	closeOnce sync.Once
	closeErr  error
}

// New starts size workers. size must be at least one.
func New(size int) (*Pool, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: pool size must be at least 1, got %d", core.ErrConfiguration, size)
	}
	p := &Pool{size: size}
	p.ready = sync.NewCond(&p.mu)
	for i := 0; i < size; i++ {
		p.workers.Go(p.work)
	}
	return p, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// Pending returns the number of queued messages no worker has claimed yet.
func (p *Pool) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Submit queues job for execution and returns immediately. Jobs are admitted
// in FIFO order but may finish in any order.
func (p *Pool) Submit(job func()) error {
	if job == nil {
		return fmt.Errorf("%w: nil job", core.ErrCoordination)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return fmt.Errorf("%w: submit on closed pool", core.ErrCoordination)
	}
	p.queue = append(p.queue, message{job: job})
	p.ready.Signal()
	return nil
}

// Close sends one terminate message per worker and waits for every worker to
// finish its current job and exit. Jobs queued before Close still run.
// Subsequent calls return the first result.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		for i := 0; i < p.size; i++ {
			p.queue = append(p.queue, message{})
		}
		p.ready.Broadcast()
		p.mu.Unlock()
		p.closeErr = p.workers.Wait()
	})
	return p.closeErr
}

func (p *Pool) work() error {
	for {
		msg := p.next()
		if msg.job == nil {
			return nil
		}
		msg.job()
	}
}

// next blocks until a message is available and dequeues it. The lock is not
// held while the job runs.
func (p *Pool) next() message {
	p.mu.Lock()
	defer p.mu.Unlock()
	for len(p.queue) == 0 {
		p.ready.Wait()
	}
	msg := p.queue[0]
	p.queue[0] = message{}
	p.queue = p.queue[1:]
	return msg
}
