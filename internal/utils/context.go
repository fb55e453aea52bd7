// Package utils holds the small shared helpers: typed context keys, JSON
// response writing, the resty client constructor, JWT minting and parsing,
// and the mutation id generator.
package utils

import (
	"context"
)

// contextKey is a private key type so context values set here cannot collide
// with string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey carries the authenticated user's id, set by the auth
// middleware and read by the player handlers:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext reads the authenticated user id from ctx. ok is false
// when the value is missing or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
