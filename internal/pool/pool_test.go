package pool

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"conway/internal/core"
)

func TestNewRejectsEmptyPool(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := New(size); !errors.Is(err, core.ErrConfiguration) {
			t.Fatalf("New(%d) err = %v, want ErrConfiguration", size, err)
		}
	}
}

func TestJobsAllRunBeforeCloseReturns(t *testing.T) {
	cases := []struct {
		workers int
		jobs    int
	}{
		{1, 1},
		{1, 50},
		{4, 1000},
		{9, 37},
	}
	for _, tc := range cases {
		p, err := New(tc.workers)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		var counter atomic.Int64
		for i := 0; i < tc.jobs; i++ {
			if err := p.Submit(func() { counter.Add(1) }); err != nil {
				t.Fatalf("Submit: %v", err)
			}
		}
		if err := p.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
		if got := counter.Load(); got != int64(tc.jobs) {
			t.Fatalf("workers=%d: counter = %d, want %d", tc.workers, got, tc.jobs)
		}
		if n := p.Pending(); n != 0 {
			t.Fatalf("workers=%d: %d messages left in queue", tc.workers, n)
		}
	}
}

func TestCloseWaitsForRunningJob(t *testing.T) {
	p, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	started := make(chan struct{})
	var finished atomic.Bool
	if err := p.Submit(func() {
		close(started)
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
	}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	<-started
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !finished.Load() {
		t.Fatalf("Close returned before the running job finished")
	}
}

func TestJobsRunConcurrently(t *testing.T) {
	const workers = 4
	p, err := New(workers)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()

	var wg sync.WaitGroup
	wg.Add(workers)
	release := make(chan struct{})
	defer close(release)
	for i := 0; i < workers; i++ {
		if err := p.Submit(func() {
			wg.Done()
			<-release
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("jobs did not run in parallel")
	}
}

func TestSubmitAfterClose(t *testing.T) {
	p, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := p.Submit(func() {}); !errors.Is(err, core.ErrCoordination) {
		t.Fatalf("Submit after Close err = %v, want ErrCoordination", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestSubmitNilJob(t *testing.T) {
	p, err := New(1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer p.Close()
	if err := p.Submit(nil); !errors.Is(err, core.ErrCoordination) {
		t.Fatalf("Submit(nil) err = %v, want ErrCoordination", err)
	}
}

func BenchmarkSubmit(b *testing.B) {
	p, err := New(4)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	var wg sync.WaitGroup
	wg.Add(b.N)
	for i := 0; i < b.N; i++ {
		if err := p.Submit(wg.Done); err != nil {
			b.Fatalf("Submit: %v", err)
		}
	}
	wg.Wait()
	p.Close()
}
