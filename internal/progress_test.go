package internal

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"
)

func TestSpin_StopsOnClose(t *testing.T) {
	var buf bytes.Buffer
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		spin(context.Background(), stop, &buf, "working")
		close(done)
	}()

	close(stop)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("spin did not return after stop was closed")
	}
}

func TestSpin_StopsOnContextCancel(t *testing.T) {
	var buf bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	stop := make(chan struct{})
	done := make(chan struct{})

	go func() {
		spin(ctx, stop, &buf, "working")
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("spin did not return after context cancellation")
	}
}

func TestShowProgress_Success(t *testing.T) {
	ran := false
	err := ShowProgress(context.Background(), "working", func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("ShowProgress() error = %v", err)
	}
	if !ran {
		t.Error("fn was not called")
	}
}

func TestShowProgress_FnError(t *testing.T) {
	wantErr := errors.New("export failed")
	err := ShowProgress(context.Background(), "working", func() error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("ShowProgress() error = %v, want %v", err, wantErr)
	}
}
