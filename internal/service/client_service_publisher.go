package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/refgame/internal/adapter"
	"github.com/MKhiriev/refgame/internal/config"
	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/internal/trainer"
	"github.com/MKhiriev/refgame/models"
)

// episodeBatchSize caps the number of episodes per upload request so long
// series do not turn into one oversized body.
const episodeBatchSize = 500

// publisherService uploads finished runs to the tracker over a
// [adapter.TrackerAdapter]. A login is performed lazily on the first publish
// and retried as a registration when the account does not exist yet.
type publisherService struct {
	tracker  adapter.TrackerAdapter
	login    string
	password string

	logger *logger.Logger
}

func NewPublisherService(tracker adapter.TrackerAdapter, cfg config.Tracker, logger *logger.Logger) PublisherService {
	return &publisherService{
		tracker:  tracker,
		login:    cfg.Login,
		password: cfg.Password,
		logger:   logger,
	}
}

// Publish implements [PublisherService].
func (p *publisherService) Publish(ctx context.Context, result *trainer.Result) error {
	log := logger.FromContext(ctx)

	if err := p.ensureAuthenticated(ctx); err != nil {
		return err
	}

	if err := p.tracker.UploadRun(ctx, result.Run); err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			return p.resumePublish(ctx, result)
		}
		return fmt.Errorf("uploading run failed: %w", err)
	}

	if err := p.uploadSeries(ctx, result.Run.RunID, result.Training); err != nil {
		return err
	}
	if err := p.uploadSeries(ctx, result.Run.RunID, result.Testing); err != nil {
		return err
	}

	log.Info().
		Str("run_id", result.Run.RunID).
		Int("training_episodes", len(result.Training)).
		Int("testing_episodes", len(result.Testing)).
		Msg("run published")
	return nil
}

// ensureAuthenticated logs in with the configured credentials, registering
// the account first when the tracker does not know the login.
func (p *publisherService) ensureAuthenticated(ctx context.Context) error {
	if p.tracker.Token() != "" {
		return nil
	}
	if p.login == "" || p.password == "" {
		return ErrInvalidDataProvided
	}

	user := models.User{Login: p.login, Password: p.password}
	_, err := p.tracker.Login(ctx, user)
	if err == nil {
		return nil
	}
	if !errors.Is(err, adapter.ErrUnauthorized) && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("tracker login failed: %w", err)
	}

	if _, err = p.tracker.Register(ctx, user); err != nil {
		return fmt.Errorf("tracker registration failed: %w", err)
	}
	return nil
}

// resumePublish finishes an earlier publish that uploaded the run record but
// not the whole episode series. The tracker's metrics report says how many
// episodes it holds per phase; since episode inserts are append-only and
// ordered, uploading the tail from those offsets completes the series
// without duplicating rows.
func (p *publisherService) resumePublish(ctx context.Context, result *trainer.Result) error {
	log := logger.FromContext(ctx)

	report, err := p.tracker.GetRunMetrics(ctx, result.Run.RunID)
	if err != nil {
		return fmt.Errorf("fetching stored run state failed: %w", err)
	}

	missingTraining := seriesTail(result.Training, report.StoredTrainingEpisodes)
	missingTesting := seriesTail(result.Testing, report.StoredTestingEpisodes)
	if len(missingTraining) == 0 && len(missingTesting) == 0 {
		log.Warn().Str("run_id", result.Run.RunID).Msg("run already uploaded, skipping")
		return nil
	}

	if err = p.uploadSeries(ctx, result.Run.RunID, missingTraining); err != nil {
		return err
	}
	if err = p.uploadSeries(ctx, result.Run.RunID, missingTesting); err != nil {
		return err
	}

	log.Info().
		Str("run_id", result.Run.RunID).
		Int("training_episodes", len(missingTraining)).
		Int("testing_episodes", len(missingTesting)).
		Msg("interrupted publish resumed")
	return nil
}

func seriesTail(episodes []models.Episode, stored int) []models.Episode {
	if stored >= len(episodes) {
		return nil
	}
	if stored < 0 {
		stored = 0
	}
	return episodes[stored:]
}

func (p *publisherService) uploadSeries(ctx context.Context, runID string, episodes []models.Episode) error {
	for lo := 0; lo < len(episodes); lo += episodeBatchSize {
		hi := lo + episodeBatchSize
		if hi > len(episodes) {
			hi = len(episodes)
		}
		if err := p.tracker.UploadEpisodes(ctx, runID, episodes[lo:hi]); err != nil {
			return fmt.Errorf("uploading episodes %d..%d failed: %w", lo, hi, err)
		}
	}
	return nil
}
