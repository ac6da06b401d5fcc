package level

import (
	"context"
	"errors"
	"testing"
)

func TestStreamDeliversArcThenEnd(t *testing.T) {
	g := newSeeded(t, 11)

	var labels []string
	err := g.Stream(context.Background(), ReceiverFunc(func(_ context.Context, rec Record) error {
		labels = append(labels, rec.LevelLabel())
		return nil
	}))
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}

	want := []string{"1", "2", "3", "4", "5", "END"}
	if len(labels) != len(want) {
		t.Fatalf("Expected %d records, got %v", len(want), labels)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("Record %d: expected %s, got %s", i, want[i], labels[i])
		}
	}
}

func TestStreamStopsOnReceiverError(t *testing.T) {
	g := newSeeded(t, 12)
	errFull := errors.New("host buffer full")

	calls := 0
	err := g.Stream(context.Background(), ReceiverFunc(func(_ context.Context, rec Record) error {
		calls++
		if rec.Level == 2 {
			return errFull
		}
		return nil
	}))

	if !errors.Is(err, errFull) {
		t.Fatalf("Expected receiver error, got %v", err)
	}
	if calls != 2 {
		t.Errorf("Expected 2 deliveries, got %d", calls)
	}
	if g.CurrentLevel() != 3 {
		t.Errorf("Expected cursor 3 after stopping, got %d", g.CurrentLevel())
	}
}

func TestStreamHonorsCancellation(t *testing.T) {
	g := newSeeded(t, 13)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Stream(ctx, ReceiverFunc(func(context.Context, Record) error {
		t.Error("Receiver should not be called after cancellation")
		return nil
	}))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if g.CurrentLevel() != 1 {
		t.Errorf("Cancelled stream should not advance the cursor, got %d", g.CurrentLevel())
	}
}
