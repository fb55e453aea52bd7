package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrSyncInFlight is returned when a sync trigger arrives while another
	// sync pass is already running. Triggers are dropped, not queued.
	ErrSyncInFlight = errors.New("sync already in flight")

	// ErrSyncThrottled is returned when a non-forced trigger arrives before
	// the minimum inter-sync interval has elapsed.
	ErrSyncThrottled = errors.New("sync throttled")

	// ErrDrainInFlight is returned when a drain is requested while another
	// drain is already replaying the queue.
	ErrDrainInFlight = errors.New("queue drain already in flight")
)
