package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/models"
)

// runRepository is the PostgreSQL-backed implementation of [RunRepository].
// Experiment snapshots, summaries, and episode inputs are stored as JSONB.
type runRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRunRepository constructs a [RunRepository] backed by the provided
// database connection and logger.
func NewRunRepository(db *DB, logger *logger.Logger) RunRepository {
	logger.Debug().Msg("creating run repository")
	return &runRepository{
		db:     db,
		logger: logger,
	}
}

// SaveRun inserts an uploaded run. Runs are immutable once stored: a
// duplicate run_id maps to [ErrRunAlreadyExists].
func (r *runRepository) SaveRun(ctx context.Context, run models.Run) error {
	log := logger.FromContext(ctx)

	experiment, summary, err := marshalRun(run)
	if err != nil {
		return err
	}

	finishedAt := sql.NullTime{Time: run.FinishedAt, Valid: !run.FinishedAt.IsZero()}
	_, err = r.db.ExecContext(ctx, saveRun,
		run.RunID, run.UserID, run.Name, run.Status, experiment, summary, run.StartedAt, finishedAt)
	if err != nil {
		log.Err(err).Str("func", "*runRepository.SaveRun").
			Str("run_id", run.RunID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert run")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return ErrRunAlreadyExists
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return nil
}

// GetRun returns the run with the given ID if it is owned by userID.
func (r *runRepository) GetRun(ctx context.Context, runID string, userID int64) (models.Run, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getRun, runID, userID)
	run, err := scanRun(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Run{}, ErrRunNotFound
		}
		log.Err(err).Str("func", "*runRepository.GetRun").
			Str("run_id", runID).
			Msg("failed to scan run row")
		return models.Run{}, err
	}

	run.UserID = userID
	return run, nil
}

// ListRuns returns the user's runs, newest first, narrowed by the filter.
func (r *runRepository) ListRuns(ctx context.Context, userID int64, filter RunFilter) ([]models.Run, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRunsQuery(userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*runRepository.ListRuns").Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*runRepository.ListRuns").
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		run, scanErr := scanRun(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*runRepository.ListRuns").Msg("failed to scan run row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		run.UserID = userID
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}

// SaveEpisodes inserts an episode batch for a run the user owns. The whole
// batch lands in one transaction so a partial upload never becomes visible.
func (r *runRepository) SaveEpisodes(ctx context.Context, runID string, userID int64, episodes []models.Episode) error {
	log := logger.FromContext(ctx)

	if _, err := r.GetRun(ctx, runID, userID); err != nil {
		return err
	}
	if len(episodes) == 0 {
		return ErrNoEpisodesSaved
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*runRepository.SaveEpisodes").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, episode := range episodes {
		input, marshalErr := json.Marshal(episode.Input)
		if marshalErr != nil {
			return fmt.Errorf("encode episode input: %w", marshalErr)
		}

		_, err = tx.ExecContext(ctx, saveEpisode,
			runID, episode.Phase, episode.Epoch, episode.Batch,
			input, episode.Message, episode.ChosenIndex, episode.Reward)
		if err != nil {
			log.Err(err).Str("func", "*runRepository.SaveEpisodes").
				Str("run_id", runID).
				Bool("retryable", r.db.retryable(err)).
				Msg("failed to insert episode")
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*runRepository.SaveEpisodes").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetEpisodes returns one phase's episode series for a run the user owns,
// in insertion order.
func (r *runRepository) GetEpisodes(ctx context.Context, runID string, userID int64, phase models.Phase) ([]models.Episode, error) {
	log := logger.FromContext(ctx)

	if _, err := r.GetRun(ctx, runID, userID); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, getEpisodes, runID, phase)
	if err != nil {
		log.Err(err).Str("func", "*runRepository.GetEpisodes").
			Str("run_id", runID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute episodes query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var episodes []models.Episode
	for rows.Next() {
		var (
			episode models.Episode
			input   []byte
		)
		scanErr := rows.Scan(&episode.ID, &episode.RunID, &episode.Phase, &episode.Epoch, &episode.Batch,
			&input, &episode.Message, &episode.ChosenIndex, &episode.Reward, &episode.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*runRepository.GetEpisodes").Msg("failed to scan episode row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		if err = json.Unmarshal(input, &episode.Input); err != nil {
			return nil, fmt.Errorf("decode episode input: %w", err)
		}
		episodes = append(episodes, episode)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return episodes, nil
}

// CountEpisodes recomputes episode counts and mean reward straight from the
// episode table, so partially uploaded runs report what the tracker holds.
func (r *runRepository) CountEpisodes(ctx context.Context, runID string, userID int64) (models.MetricsReport, error) {
	log := logger.FromContext(ctx)

	run, err := r.GetRun(ctx, runID, userID)
	if err != nil {
		return models.MetricsReport{}, err
	}

	report := models.MetricsReport{RunID: runID, Summary: run.Summary}
	row := r.db.QueryRowContext(ctx, countEpisodes, runID)
	if err = row.Scan(&report.StoredTrainingEpisodes, &report.StoredTestingEpisodes, &report.MeanStoredReward); err != nil {
		log.Err(err).Str("func", "*runRepository.CountEpisodes").
			Str("run_id", runID).
			Msg("failed to scan episode counts")
		return models.MetricsReport{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return report, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func marshalRun(run models.Run) (experiment, summary []byte, err error) {
	experiment, err = json.Marshal(run.Experiment)
	if err != nil {
		return nil, nil, fmt.Errorf("encode experiment snapshot: %w", err)
	}
	summary, err = json.Marshal(run.Summary)
	if err != nil {
		return nil, nil, fmt.Errorf("encode run summary: %w", err)
	}
	return experiment, summary, nil
}

func scanRun(row rowScanner) (models.Run, error) {
	var (
		run        models.Run
		experiment []byte
		summary    []byte
		finishedAt sql.NullTime
	)
	if err := row.Scan(&run.RunID, &run.Name, &run.Status, &experiment, &summary, &run.StartedAt, &finishedAt); err != nil {
		return models.Run{}, err
	}

	if err := json.Unmarshal(experiment, &run.Experiment); err != nil {
		return models.Run{}, fmt.Errorf("decode experiment snapshot: %w", err)
	}
	if err := json.Unmarshal(summary, &run.Summary); err != nil {
		return models.Run{}, fmt.Errorf("decode run summary: %w", err)
	}
	if finishedAt.Valid {
		run.FinishedAt = finishedAt.Time
	}

	return run, nil
}
