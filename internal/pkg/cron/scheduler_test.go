package cron

import (
	"context"
	"testing"
	"time"
)

func TestSchedulerRunsJobImmediatelyOnStart(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)

	s.AddJob("first-run", time.Hour, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on scheduler start")
	}
}

func TestSchedulerStopCancelsJobContext(t *testing.T) {
	s := NewScheduler()
	done := make(chan struct{}, 1)

	s.AddJob("ctx-check", time.Hour, func(ctx context.Context) error {
		go func() {
			<-ctx.Done()
			select {
			case done <- struct{}{}:
			default:
			}
		}()
		return nil
	})

	s.Start()
	s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job context was not cancelled on stop")
	}
}

func TestRunOnce(t *testing.T) {
	s := NewScheduler()
	count := 0

	s.AddJob("a", time.Hour, func(ctx context.Context) error { count++; return nil })
	s.AddJob("b", time.Hour, func(ctx context.Context) error { count++; return nil })

	s.RunOnce(context.Background())

	if count != 2 {
		t.Fatalf("RunOnce executed %d jobs, want 2", count)
	}
}
