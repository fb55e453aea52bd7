// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/lumenplay/levelkeeper/internal/service"
)

// TriggerWorker bridges the sync trigger sources into the engine's event
// loop: the periodic tick plus the injected reachability and lifecycle
// observers. The loop itself lives on the engine; this worker only owns
// its lifetime.
type TriggerWorker struct {
	ctx      context.Context
	engine   service.SyncEngine
	triggers service.Triggers
}

// NewTriggerWorker assembles the engine's trigger set. Either observer may
// be nil when the host platform provides no such signal; the corresponding
// trigger is then simply never selected.
func NewTriggerWorker(ctx context.Context, engine service.SyncEngine, tick <-chan struct{}, reachability service.ReachabilityObserver, lifecycle service.LifecycleObserver) *TriggerWorker {
	triggers := service.Triggers{Tick: tick}
	if reachability != nil {
		triggers.Reachability = reachability.Events()
	}
	if lifecycle != nil {
		triggers.Lifecycle = lifecycle.Events()
	}

	return &TriggerWorker{
		ctx:      ctx,
		engine:   engine,
		triggers: triggers,
	}
}

// Run starts the engine loop in its own goroutine. It implements [Worker].
func (w *TriggerWorker) Run() {
	go w.engine.Run(w.ctx, w.triggers)
}
