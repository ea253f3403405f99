// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the remote vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the services
// from the transport. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-keycore/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the vault server. Implementations
// are responsible for serialisation, the authentication header and mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. An empty token removes it.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// GetSync fetches the account's profile and unlock methods.
	GetSync(ctx context.Context) (models.SyncResponse, error)

	// GetAccountRevisionDate returns the time of the last change to the
	// account on the server.
	GetAccountRevisionDate(ctx context.Context) (time.Time, error)

	// PostKdf replaces the account's KDF settings together with the
	// authentication and unlock data derived with them.
	PostKdf(ctx context.Context, req models.KdfRequest) error

	// GetServerConfig fetches the server version and feature flags. It does
	// not require a token.
	GetServerConfig(ctx context.Context) (models.ServerConfig, error)

	// PostPrelogin returns the KDF settings of the account registered with
	// email. It does not require a token.
	PostPrelogin(ctx context.Context, email string) (models.PreloginResponse, error)
}
