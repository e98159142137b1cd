package server

import (
	"context"
	"syscall"
	"testing"
	"time"
)

func TestWithSignal_CancelsOnSIGTERM(t *testing.T) {
	ctx, stop := WithSignal(context.Background())
	defer stop()

	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("failed to send signal: %v", err)
	}

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not canceled by SIGTERM")
	}
}

func TestWithSignal_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx, stop := WithSignal(parent)
	defer stop()

	cancel()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled with parent")
	}
}
