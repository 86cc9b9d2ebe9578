// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the refgame tracker server.
//
// The primary abstraction is [TrackerAdapter], which decouples the trainer's
// publishing service from the underlying protocol. The package ships an
// HTTP/REST implementation ([NewHTTPTrackerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/refgame/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/tracker_adapter_mock.go -package=mock

// TrackerAdapter defines transport-agnostic communication with the refgame
// tracker. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type TrackerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the tracker with the provided
	// user credentials. On success it stores the returned bearer token via
	// SetToken and returns the user value. Returns an error if the request
	// fails or the server responds with a non-2xx status.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user against the tracker. On success it stores
	// the returned bearer token via SetToken. Returns an error if the request
	// fails or the server responds with a non-2xx status.
	Login(ctx context.Context, user models.User) (models.User, error)

	// UploadRun uploads one finished run record. A transport integrity hash
	// covering the payload is attached automatically when the adapter is
	// configured with a hash key. Returns [ErrConflict] (wrapped) when the
	// tracker already holds the run.
	UploadRun(ctx context.Context, run models.Run) error

	// UploadEpisodes uploads one batch of the run's episode series.
	UploadEpisodes(ctx context.Context, runID string, episodes []models.Episode) error

	// GetRunMetrics fetches the tracker's aggregated metrics for the run,
	// including the episode counts it actually holds. Publishers use the
	// counts to resume an interrupted episode upload.
	GetRunMetrics(ctx context.Context, runID string) (models.MetricsReport, error)
}
