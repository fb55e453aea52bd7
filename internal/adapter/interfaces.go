// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the LevelKeeper content service.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrUnavailable] for 5xx).
package adapter

import (
	"context"

	"github.com/lumenplay/levelkeeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the content
// service. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server with the provided
	// user credentials. On success it stores the returned bearer token via
	// SetToken and returns the user value. Returns an error if the request
	// fails or the server responds with a non-2xx status.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken and returns the server-side user
	// record. Returns an error if the request fails or the server responds
	// with a non-2xx status.
	Login(ctx context.Context, user models.User) (models.User, error)

	// FetchManifest retrieves the current published manifest. The request is
	// cache-busted so intermediate HTTP caches can never serve a stale
	// manifest document.
	FetchManifest(ctx context.Context) (models.Manifest, error)

	// FetchEntityMetas retrieves the lightweight descriptors of every
	// published entity.
	FetchEntityMetas(ctx context.Context) ([]models.EntityMeta, error)

	// FetchEntityContent retrieves one entity's full payload together with
	// its content version. Returns [ErrNotFound] (wrapped) if the server has
	// no such entity.
	FetchEntityContent(ctx context.Context, id models.EntityID) (models.EntityContent, error)

	// FetchPlayerState retrieves the authoritative progress and subscription
	// snapshot for the authenticated user in one request.
	FetchPlayerState(ctx context.Context) (models.PlayerState, error)

	// ReplayMutation submits one queued offline mutation. A nil return means
	// the server has durably accepted the mutation and the caller may remove
	// it from the queue.
	ReplayMutation(ctx context.Context, payload models.MutationPayload) error
}
