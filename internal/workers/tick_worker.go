// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"
)

// TickWorker emits a periodic sync trigger. A tick that arrives while the
// previous one is still unconsumed is dropped, matching the engine's
// drop-not-queue trigger policy.
type TickWorker struct {
	ctx      context.Context
	interval time.Duration
	out      chan struct{}
}

// NewTickWorker builds a ticker worker that stops when ctx is cancelled.
func NewTickWorker(ctx context.Context, interval time.Duration) *TickWorker {
	return &TickWorker{
		ctx:      ctx,
		interval: interval,
		out:      make(chan struct{}, 1),
	}
}

// Ticks returns the channel the worker emits on. Wire it into the engine's
// trigger set before calling Run.
func (w *TickWorker) Ticks() <-chan struct{} {
	return w.out
}

// Run starts the ticker goroutine. It implements [Worker].
func (w *TickWorker) Run() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				select {
				case w.out <- struct{}{}:
				default:
				}
			}
		}
	}()
}
