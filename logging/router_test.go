package logging_test

import (
	"context"
	"testing"
	"time"

	"github.com/GodfreyDev/ChatGame/logging"
	"github.com/GodfreyDev/ChatGame/logging/sinks"
)

func newMemoryRouter(minimum logging.Severity) (*logging.Router, *sinks.Memory) {
	memory := sinks.NewMemory()
	cfg := logging.DefaultConfig()
	cfg.EnabledSinks = []string{"memory"}
	cfg.MinimumSeverity = minimum
	router := logging.NewRouter(cfg, logging.SystemClock{}, []logging.NamedSink{{Name: "memory", Sink: memory}})
	return router, memory
}

func TestRouterDeliversEventsInOrder(t *testing.T) {
	router, memory := newMemoryRouter(logging.SeverityDebug)

	for i := 0; i < 5; i++ {
		router.Publish(context.Background(), logging.Event{
			Type: "test.event",
			Tick: uint64(i),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := router.Close(ctx); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	events := memory.Events()
	if len(events) != 5 {
		t.Fatalf("expected 5 events delivered, got %d", len(events))
	}
	for i, event := range events {
		if event.Tick != uint64(i) {
			t.Fatalf("expected ordered delivery, event %d has tick %d", i, event.Tick)
		}
		if event.Time.IsZero() {
			t.Fatalf("expected the router to stamp a time")
		}
	}

	stats := router.Stats()
	if stats.EventsTotal != 5 || stats.DroppedTotal != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestRouterFiltersBelowMinimumSeverity(t *testing.T) {
	router, memory := newMemoryRouter(logging.SeverityInfo)

	router.Publish(context.Background(), logging.Event{Type: "low", Severity: logging.SeverityDebug})
	router.Publish(context.Background(), logging.Event{Type: "high", Severity: logging.SeverityWarn})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := router.Close(ctx); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	events := memory.Events()
	if len(events) != 1 || events[0].Type != "high" {
		t.Fatalf("expected only the warn event, got %d events", len(events))
	}
}

func TestRouterDiscardsUntypedAndPostCloseEvents(t *testing.T) {
	router, memory := newMemoryRouter(logging.SeverityDebug)

	router.Publish(context.Background(), logging.Event{Type: ""})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := router.Close(ctx); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	router.Publish(context.Background(), logging.Event{Type: "late"})

	if events := memory.Events(); len(events) != 0 {
		t.Fatalf("expected nothing delivered, got %d events", len(events))
	}
}

func TestRouterCloseIsIdempotent(t *testing.T) {
	router, _ := newMemoryRouter(logging.SeverityDebug)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := router.Close(ctx); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// A repeat close must return immediately even on a context that never
	// expires.
	done := make(chan error, 1)
	go func() {
		done <- router.Close(context.Background())
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("repeat close failed: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("repeat close blocked")
	}
}

func TestWithExtraDoesNotShareState(t *testing.T) {
	base := logging.Event{Type: "test.event"}
	first := base.WithExtra("a", 1)
	second := first.WithExtra("b", 2)

	if len(first.Extra) != 1 {
		t.Fatalf("expected the first copy untouched, got %v", first.Extra)
	}
	if len(second.Extra) != 2 {
		t.Fatalf("expected the second copy to accumulate, got %v", second.Extra)
	}
	if base.Extra != nil {
		t.Fatalf("expected the base event untouched")
	}
}
