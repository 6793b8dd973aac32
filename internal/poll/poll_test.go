package poll

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	if cfg.Interval != DefaultInterval {
		t.Errorf("Interval = %v, want %v", cfg.Interval, DefaultInterval)
	}
	if cfg.MaxInterval != DefaultMaxInterval {
		t.Errorf("MaxInterval = %v, want %v", cfg.MaxInterval, DefaultMaxInterval)
	}
	if cfg.Multiplier != DefaultMultiplier {
		t.Errorf("Multiplier = %v, want %v", cfg.Multiplier, DefaultMultiplier)
	}
	if cfg.Jitter != 0 {
		t.Errorf("Jitter = %v, want 0 (explicit zero preserved)", cfg.Jitter)
	}
}

func TestConfig_WithDefaults_KeepsExplicitValues(t *testing.T) {
	in := Config{
		Interval:    5 * time.Millisecond,
		MaxInterval: 50 * time.Millisecond,
		Multiplier:  2.0,
		Jitter:      0.1,
	}
	cfg := in.withDefaults()

	if cfg != in {
		t.Errorf("withDefaults() = %+v, want unchanged %+v", cfg, in)
	}
}

func TestRun_ImmediateDone(t *testing.T) {
	calls := 0
	err := Run(context.Background(), Config{Interval: time.Hour}, func(ctx context.Context) (bool, error) {
		calls++
		return true, nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRun_PollsUntilDone(t *testing.T) {
	cfg := Config{
		Interval:    time.Millisecond,
		MaxInterval: 5 * time.Millisecond,
		Multiplier:  2.0,
		Jitter:      0,
	}

	calls := 0
	err := Run(context.Background(), cfg, func(ctx context.Context) (bool, error) {
		calls++
		return calls >= 3, nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRun_StopsOnError(t *testing.T) {
	wantErr := errors.New("lookup failed")

	calls := 0
	err := Run(context.Background(), Config{Interval: time.Millisecond}, func(ctx context.Context) (bool, error) {
		calls++
		return false, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Run() error = %v, want %v", err, wantErr)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := Config{Interval: time.Hour}
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, cfg, func(ctx context.Context) (bool, error) {
			return false, nil
		})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after cancellation")
	}
}

func TestRun_ContextDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Run(ctx, Config{Interval: time.Hour}, func(ctx context.Context) (bool, error) {
		return false, nil
	})
	if err != context.DeadlineExceeded {
		t.Errorf("Run() error = %v, want context.DeadlineExceeded", err)
	}
}

func TestNextInterval(t *testing.T) {
	cfg := Config{MaxInterval: 30 * time.Second, Multiplier: 1.5}

	tests := []struct {
		current time.Duration
		want    time.Duration
	}{
		{2 * time.Second, 3 * time.Second},
		{10 * time.Second, 15 * time.Second},
		{20 * time.Second, 30 * time.Second},  // capped
		{100 * time.Second, 30 * time.Second}, // already over cap
	}

	for _, tt := range tests {
		if got := nextInterval(tt.current, cfg); got != tt.want {
			t.Errorf("nextInterval(%v) = %v, want %v", tt.current, got, tt.want)
		}
	}
}

func TestJittered_Bounds(t *testing.T) {
	base := 10 * time.Second

	for i := 0; i < 100; i++ {
		got := jittered(base, 0.3)
		if got < base || got > base+3*time.Second {
			t.Fatalf("jittered(%v, 0.3) = %v, out of bounds", base, got)
		}
	}
}

func TestJittered_ZeroFactor(t *testing.T) {
	base := 10 * time.Second
	if got := jittered(base, 0); got != base {
		t.Errorf("jittered(%v, 0) = %v, want %v", base, got, base)
	}
}
