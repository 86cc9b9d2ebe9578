package service

import (
	"context"

	"github.com/MKhiriev/refgame/internal/store"
	"github.com/MKhiriev/refgame/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService handles tracker accounts and token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RunService handles uploaded runs and their episode series. Every call is
// scoped to the authenticated owner.
type RunService interface {
	SaveRun(ctx context.Context, userID int64, run models.Run) error
	GetRun(ctx context.Context, userID int64, runID string) (models.Run, error)
	ListRuns(ctx context.Context, userID int64, filter store.RunFilter) ([]models.RunListItem, error)
	SaveEpisodes(ctx context.Context, userID int64, runID string, episodes []models.Episode) error
	GetEpisodes(ctx context.Context, userID int64, runID string, phase models.Phase) ([]models.Episode, error)
	GetMetrics(ctx context.Context, userID int64, runID string) (models.MetricsReport, error)
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.BuildInfo
}
