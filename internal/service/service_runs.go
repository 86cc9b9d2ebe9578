package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/internal/store"
	"github.com/MKhiriev/refgame/models"
)

// runService is the concrete implementation of RunService. It enforces the
// upload rules on top of the repository: only terminal runs are accepted,
// and every read goes through the owner check the repository performs.
type runService struct {
	runRepository store.RunRepository
	logger        *logger.Logger
}

// NewRunService constructs a RunService over the given repository.
func NewRunService(runRepository store.RunRepository, logger *logger.Logger) RunService {
	return &runService{
		runRepository: runRepository,
		logger:        logger,
	}
}

// SaveRun stores an uploaded run. The tracker archives completed work, so
// only runs in a terminal status (finished or failed) are accepted.
func (s *runService) SaveRun(ctx context.Context, userID int64, run models.Run) error {
	log := logger.FromContext(ctx)

	if run.RunID == "" || run.Name == "" {
		log.Error().Str("run_id", run.RunID).Msg("invalid run data provided")
		return ErrInvalidDataProvided
	}
	if run.Status != models.RunFinished && run.Status != models.RunFailed {
		log.Error().
			Str("run_id", run.RunID).
			Str("status", string(run.Status)).
			Msg("rejected non-terminal run upload")
		return ErrRunNotFinished
	}

	run.UserID = userID
	if err := s.runRepository.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("saving run failed: %w", err)
	}

	return nil
}

func (s *runService) GetRun(ctx context.Context, userID int64, runID string) (models.Run, error) {
	if runID == "" {
		return models.Run{}, ErrInvalidDataProvided
	}

	run, err := s.runRepository.GetRun(ctx, runID, userID)
	if err != nil {
		return models.Run{}, fmt.Errorf("getting run failed: %w", err)
	}

	return run, nil
}

// ListRuns returns the owner's runs in compact list form, newest first.
func (s *runService) ListRuns(ctx context.Context, userID int64, filter store.RunFilter) ([]models.RunListItem, error) {
	runs, err := s.runRepository.ListRuns(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("listing runs failed: %w", err)
	}

	items := make([]models.RunListItem, 0, len(runs))
	for _, run := range runs {
		item := models.RunListItem{
			RunID:     run.RunID,
			Name:      run.Name,
			Status:    run.Status,
			Summary:   run.Summary,
			StartedAt: run.StartedAt.Format(time.RFC3339),
		}
		if !run.FinishedAt.IsZero() {
			item.FinishedAt = run.FinishedAt.Format(time.RFC3339)
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *runService) SaveEpisodes(ctx context.Context, userID int64, runID string, episodes []models.Episode) error {
	if runID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.runRepository.SaveEpisodes(ctx, runID, userID, episodes); err != nil {
		return fmt.Errorf("saving episodes failed: %w", err)
	}

	return nil
}

func (s *runService) GetEpisodes(ctx context.Context, userID int64, runID string, phase models.Phase) ([]models.Episode, error) {
	if runID == "" {
		return nil, ErrInvalidDataProvided
	}
	if phase != models.PhaseTraining && phase != models.PhaseTesting {
		return nil, ErrInvalidDataProvided
	}

	episodes, err := s.runRepository.GetEpisodes(ctx, runID, userID, phase)
	if err != nil {
		return nil, fmt.Errorf("getting episodes failed: %w", err)
	}

	return episodes, nil
}

func (s *runService) GetMetrics(ctx context.Context, userID int64, runID string) (models.MetricsReport, error) {
	if runID == "" {
		return models.MetricsReport{}, ErrInvalidDataProvided
	}

	report, err := s.runRepository.CountEpisodes(ctx, runID, userID)
	if err != nil {
		return models.MetricsReport{}, fmt.Errorf("getting metrics failed: %w", err)
	}

	return report, nil
}
