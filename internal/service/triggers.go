package service

// Phase is an application lifecycle state reported by a [LifecycleObserver].
type Phase int

const (
	PhaseBackground Phase = iota
	PhaseForeground
)

// ReachabilityObserver reports network reachability transitions. Events
// carries true when the network became reachable and false when it was lost.
type ReachabilityObserver interface {
	Events() <-chan bool
}

// LifecycleObserver reports application foreground/background transitions.
type LifecycleObserver interface {
	Events() <-chan Phase
}

// Triggers bundles the channels [SyncEngine.Run] consumes. Any nil channel is
// simply never selected, so callers wire only the triggers they have.
type Triggers struct {
	// Tick requests a throttled sync (periodic timer).
	Tick <-chan struct{}

	// Reachability carries network transitions; a false→true edge requests
	// a queue drain followed by a forced sync.
	Reachability <-chan bool

	// Lifecycle carries foreground/background transitions; entering the
	// foreground requests a queue drain followed by a throttled sync.
	Lifecycle <-chan Phase
}
