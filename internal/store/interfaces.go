// Package store holds the persistence layer: PostgreSQL repositories behind
// the tracker and the SQLite-backed local run store used by the trainer.
package store

import (
	"context"

	"github.com/MKhiriev/refgame/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists tracker accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// RunFilter narrows run listings. Zero values mean "no restriction".
type RunFilter struct {
	Status models.RunStatus
	Limit  uint64
}

// RunRepository persists uploaded runs and their episode series on the
// tracker side. Every read is scoped to the owning user.
type RunRepository interface {
	SaveRun(ctx context.Context, run models.Run) error
	GetRun(ctx context.Context, runID string, userID int64) (models.Run, error)
	ListRuns(ctx context.Context, userID int64, filter RunFilter) ([]models.Run, error)
	SaveEpisodes(ctx context.Context, runID string, userID int64, episodes []models.Episode) error
	GetEpisodes(ctx context.Context, runID string, userID int64, phase models.Phase) ([]models.Episode, error)
	CountEpisodes(ctx context.Context, runID string, userID int64) (models.MetricsReport, error)
}

// LocalRunStore is the trainer's offline run archive. It mirrors the tracker
// schema without user scoping: the local store belongs to one operator.
type LocalRunStore interface {
	SaveRun(ctx context.Context, run models.Run) error
	SaveEpisodes(ctx context.Context, runID string, episodes []models.Episode) error
	GetRun(ctx context.Context, runID string) (models.Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]models.Run, error)
}
