package app

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubService struct {
	name    string
	startCh chan error
	stopped chan struct{}
}

func newStubService(name string) *stubService {
	return &stubService{
		name:    name,
		startCh: make(chan error, 1),
		stopped: make(chan struct{}),
	}
}

func (s *stubService) Name() string {
	return s.name
}

func (s *stubService) Start(ctx context.Context) error {
	select {
	case err := <-s.startCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *stubService) Stop(ctx context.Context) error {
	close(s.stopped)
	return nil
}

func waitStopped(t *testing.T, svc *stubService) {
	t.Helper()
	select {
	case <-svc.stopped:
	case <-time.After(time.Second):
		t.Fatalf("expected service %s to be stopped", svc.name)
	}
}

func TestRunnerStopsAllServicesAfterFirstExit(t *testing.T) {
	healthy := newStubService("http")
	failing := newStubService("worker")
	runner := NewRunner(healthy, failing)

	boom := errors.New("boom")
	failing.startCh <- boom

	err := runner.Run(context.Background(), time.Second, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected first exit error to propagate, got %v", err)
	}
	waitStopped(t, healthy)
	waitStopped(t, failing)
}

func TestRunnerReturnsNilOnContextCancel(t *testing.T) {
	svc := newStubService("http")
	runner := NewRunner(svc)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	if err := runner.Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("cancel should shut down cleanly, got %v", err)
	}
	waitStopped(t, svc)
}

func TestNormalizeOptionsDefaults(t *testing.T) {
	opts := normalizeOptions(Options{Mode: "bogus"})
	if opts.Mode != ModeAll {
		t.Fatalf("unknown mode should fall back to all, got %s", opts.Mode)
	}
	if opts.ShutdownTimeout != DefaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout, got %v", opts.ShutdownTimeout)
	}
	if len(opts.Signals) == 0 {
		t.Fatalf("expected default stop signals")
	}
	if opts.Logger == nil {
		t.Fatalf("expected fallback logger")
	}
}
