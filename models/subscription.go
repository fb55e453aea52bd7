package models

import "time"

// SubscriptionSnapshot is the user's current subscription state as reported
// by the server. It is fully overwritten by each successful sync and is used
// for offline gating decisions by consumers of the engine.
type SubscriptionSnapshot struct {
	IsActive    bool      `json:"is_active"`
	ActiveUntil time.Time `json:"active_until"`
	PlanID      string    `json:"plan_id,omitempty"`
}
