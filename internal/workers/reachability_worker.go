// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"net"
	"time"

	"github.com/lumenplay/levelkeeper/internal/logger"
)

const dialTimeout = 3 * time.Second

// ReachabilityWorker probes the backend address on an interval and reports
// reachability transitions. It implements both [Worker] and
// [service.ReachabilityObserver], so it plugs straight into a
// TriggerWorker. Only state changes are emitted; a probe result equal to
// the previous one is silent.
type ReachabilityWorker struct {
	ctx      context.Context
	addr     string
	interval time.Duration
	out      chan bool

	// dial is the probe; injectable for tests.
	dial func(addr string) error

	logger *logger.Logger
}

// NewReachabilityWorker builds a probe against the given host:port address.
func NewReachabilityWorker(ctx context.Context, addr string, interval time.Duration, logger *logger.Logger) *ReachabilityWorker {
	return &ReachabilityWorker{
		ctx:      ctx,
		addr:     addr,
		interval: interval,
		out:      make(chan bool, 1),
		dial:     dialProbe,
		logger:   logger,
	}
}

// Events implements [service.ReachabilityObserver].
func (w *ReachabilityWorker) Events() <-chan bool {
	return w.out
}

// Run starts the probe goroutine. It implements [Worker].
func (w *ReachabilityWorker) Run() {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		// The engine assumes reachable until told otherwise; start from the
		// same state so the first failed probe produces a transition.
		reachable := true

		for {
			select {
			case <-w.ctx.Done():
				return
			case <-ticker.C:
				nowReachable := w.dial(w.addr) == nil
				if nowReachable == reachable {
					continue
				}
				reachable = nowReachable
				w.logger.Info().Bool("reachable", reachable).Str("addr", w.addr).Msg("network reachability changed")
				// replace an unconsumed stale state rather than dropping the
				// newer one; this goroutine is the only sender, so the
				// buffered send cannot block after the drain
				select {
				case <-w.out:
				default:
				}
				w.out <- reachable
			}
		}
	}()
}

func dialProbe(addr string) error {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return err
	}
	return conn.Close()
}
