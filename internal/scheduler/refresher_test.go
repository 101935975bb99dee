package scheduler

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"
)

type countingTarget struct {
	mu    sync.Mutex
	calls int
	n     int
	err   error
	block chan struct{}
}

func (c *countingTarget) RefreshOpenJobs(context.Context) (int, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.block != nil {
		<-c.block
	}
	return c.n, c.err
}

func (c *countingTarget) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type recordingNotifier struct {
	jobs []int
}

func (r *recordingNotifier) NotifyEligibilityRefreshed(jobs int) {
	r.jobs = append(r.jobs, jobs)
}

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestRefresher_RunOnceNotifies(t *testing.T) {
	target := &countingTarget{n: 4}
	n := &recordingNotifier{}
	r := NewRefresher("@every 1h", target, n, quietLogger())

	r.RunOnce(context.Background())

	if target.Calls() != 1 {
		t.Fatalf("expected 1 call, got %d", target.Calls())
	}
	if len(n.jobs) != 1 || n.jobs[0] != 4 {
		t.Fatalf("expected notification for 4 jobs, got %v", n.jobs)
	}
}

func TestRefresher_NoNotificationWhenNothingRefreshed(t *testing.T) {
	n := &recordingNotifier{}
	r := NewRefresher("@every 1h", &countingTarget{err: errors.New("boom")}, n, quietLogger())
	r.RunOnce(context.Background())
	if len(n.jobs) != 0 {
		t.Fatalf("expected no notification, got %v", n.jobs)
	}
}

func TestRefresher_SkipsOverlappingRuns(t *testing.T) {
	target := &countingTarget{block: make(chan struct{})}
	r := NewRefresher("@every 1h", target, nil, quietLogger())

	done := make(chan struct{})
	go func() {
		r.RunOnce(context.Background())
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for target.Calls() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("first run never started")
		}
		time.Sleep(5 * time.Millisecond)
	}

	r.RunOnce(context.Background())
	close(target.block)
	<-done

	if target.Calls() != 1 {
		t.Fatalf("expected overlapping run to be skipped, got %d calls", target.Calls())
	}
}

func TestRefresher_CancelledContext(t *testing.T) {
	target := &countingTarget{}
	r := NewRefresher("@every 1h", target, nil, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r.RunOnce(ctx)
	if target.Calls() != 0 {
		t.Fatalf("expected no refresh after cancellation")
	}
}

func TestRefresher_StartRejectsBadSpec(t *testing.T) {
	r := NewRefresher("every now and then", &countingTarget{}, nil, quietLogger())
	if err := r.Start(context.Background()); err == nil {
		t.Fatalf("expected invalid spec error")
	}
}
