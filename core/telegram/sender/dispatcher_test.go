package sender

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestDispatcherRunsJobs(t *testing.T) {
	d := NewDispatcher(Options{QueueSize: 4, Workers: 1})

	var ran atomic.Int32
	done := make(chan struct{})
	err := d.Enqueue(context.Background(), "send.text", "sendMessage", func() error {
		ran.Add(1)
		close(done)
		return nil
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
	d.Close()
	if ran.Load() != 1 {
		t.Fatalf("job ran %d times, expected 1", ran.Load())
	}
	if d.ErrorCount() != 0 {
		t.Fatalf("error count = %d, expected 0", d.ErrorCount())
	}
}

func TestDispatcherRejectsAfterClose(t *testing.T) {
	d := NewDispatcher(Options{QueueSize: 1, Workers: 1})
	d.Close()

	err := d.Enqueue(context.Background(), "send.text", "sendMessage", func() error { return nil })
	if !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("err = %v, expected ErrQueueClosed", err)
	}
}

func TestDispatcherCountsFailures(t *testing.T) {
	d := NewDispatcher(Options{QueueSize: 4, Workers: 1, MaxRetries: 0})

	done := make(chan struct{})
	err := d.Enqueue(context.Background(), "send.text", "sendMessage", func() error {
		defer close(done)
		return errors.New("telegram: permanent failure")
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	<-done
	d.Close()
	if d.ErrorCount() != 1 {
		t.Fatalf("error count = %d, expected 1", d.ErrorCount())
	}
}

func TestSanitizeErrorMessage(t *testing.T) {
	err := errors.New("Post \"https://api.telegram.org/bot12345:AAAbbbCCC/sendMessage\": timeout")
	got := sanitizeErrorMessage(err)
	if got != "Post \"https://api.telegram.org/bot<redacted>/sendMessage\": timeout" {
		t.Fatalf("sanitized = %q", got)
	}
}
