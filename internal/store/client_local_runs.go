package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/models"
)

// localRunStore is the SQLite-backed implementation of [LocalRunStore]. It is
// the trainer's offline archive: every run is written here first, whether or
// not it is later published to the tracker.
type localRunStore struct {
	*DB
	logger *logger.Logger
}

// NewLocalRunStore constructs a [LocalRunStore] over an open SQLite
// connection (see [NewConnectSQLite]).
func NewLocalRunStore(db *DB, logger *logger.Logger) LocalRunStore {
	return &localRunStore{
		DB:     db,
		logger: logger,
	}
}

func (l *localRunStore) SaveRun(ctx context.Context, run models.Run) error {
	log := logger.FromContext(ctx)

	experiment, summary, err := marshalRun(run)
	if err != nil {
		return err
	}

	query, args, err := buildLocalInsertRunQuery(run, experiment, summary)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localRunStore.SaveRun").
			Str("run_id", run.RunID).
			Msg("failed to insert run")
		return fmt.Errorf("failed to save run (run_id=%s): %w", run.RunID, err)
	}

	return nil
}

func (l *localRunStore) SaveEpisodes(ctx context.Context, runID string, episodes []models.Episode) error {
	log := logger.FromContext(ctx)

	if len(episodes) == 0 {
		return ErrNoEpisodesSaved
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, episode := range episodes {
		input, marshalErr := json.Marshal(episode.Input)
		if marshalErr != nil {
			return fmt.Errorf("encode episode input: %w", marshalErr)
		}

		query, args, buildErr := buildLocalInsertEpisodeQuery(runID, episode, input)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localRunStore.SaveEpisodes").
				Str("run_id", runID).
				Msg("failed to insert episode")
			return fmt.Errorf("failed to save episodes (run_id=%s): %w", runID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localRunStore) GetRun(ctx context.Context, runID string) (models.Run, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLocalGetRunQuery(runID)
	if err != nil {
		return models.Run{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	run, err := scanRun(l.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Run{}, ErrRunNotFound
		}
		log.Err(err).
			Str("func", "localRunStore.GetRun").
			Str("run_id", runID).
			Msg("failed to scan run row")
		return models.Run{}, err
	}

	return run, nil
}

func (l *localRunStore) ListRuns(ctx context.Context, filter RunFilter) ([]models.Run, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLocalListRunsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localRunStore.ListRuns").
			Msg("failed to execute list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var runs []models.Run
	for rows.Next() {
		run, scanErr := scanRun(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localRunStore.ListRuns").
				Msg("failed to scan run row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return runs, nil
}
