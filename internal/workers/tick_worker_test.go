// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"
)

func TestTickWorker_Emits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewTickWorker(ctx, 5*time.Millisecond)
	w.Run()

	select {
	case <-w.Ticks():
	case <-time.After(time.Second):
		t.Fatal("expected a tick within one second")
	}
}

func TestTickWorker_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	w := NewTickWorker(ctx, 5*time.Millisecond)
	w.Run()
	cancel()

	// drain whatever was buffered before the cancel landed
	time.Sleep(20 * time.Millisecond)
	select {
	case <-w.Ticks():
	default:
	}

	select {
	case <-w.Ticks():
		t.Fatal("worker kept ticking after cancel")
	case <-time.After(50 * time.Millisecond):
	}
}
