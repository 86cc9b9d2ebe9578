// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/refgame/models"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash)
	VALUES ($1, $2, $3)
	RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at
	FROM users
	WHERE login = $1;`

	saveRun = `INSERT INTO runs (run_id, user_id, name, status, experiment, summary, started_at, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	getRun = `SELECT run_id, name, status, experiment, summary, started_at, finished_at
	FROM runs
	WHERE run_id = $1 AND user_id = $2;`

	saveEpisode = `INSERT INTO episodes (run_id, phase, epoch, batch, input, message, chosen_index, reward)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	getEpisodes = `SELECT id, run_id, phase, epoch, batch, input, message, chosen_index, reward, created_at
	FROM episodes
	WHERE run_id = $1 AND phase = $2
	ORDER BY id;`

	countEpisodes = `SELECT
		COUNT(*) FILTER (WHERE phase = 'training'),
		COUNT(*) FILTER (WHERE phase = 'testing'),
		COALESCE(AVG(reward), 0)
	FROM episodes
	WHERE run_id = $1;`
)

// runColumns is the column list shared by every run SELECT.
var runColumns = []string{"run_id", "name", "status", "experiment", "summary", "started_at", "finished_at"}

// buildListRunsQuery assembles the run-listing SELECT for the tracker.
// The filter adds predicates only for its non-zero fields.
func buildListRunsQuery(userID int64, filter RunFilter) (string, []any, error) {
	builder := sq.Select(runColumns...).
		From("runs").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("started_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}

// buildLocalListRunsQuery is the SQLite counterpart: no user scoping and
// question-mark placeholders.
func buildLocalListRunsQuery(filter RunFilter) (string, []any, error) {
	builder := sq.Select(runColumns...).
		From("runs").
		OrderBy("started_at DESC")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}

// buildLocalInsertRunQuery assembles the local-store run INSERT.
func buildLocalInsertRunQuery(run models.Run, experiment, summary []byte) (string, []any, error) {
	return sq.Insert("runs").
		Columns("run_id", "name", "status", "experiment", "summary", "started_at", "finished_at").
		Values(run.RunID, run.Name, run.Status, experiment, summary, run.StartedAt, run.FinishedAt).
		ToSql()
}

// buildLocalInsertEpisodeQuery assembles the local-store episode INSERT.
func buildLocalInsertEpisodeQuery(runID string, e models.Episode, input []byte) (string, []any, error) {
	return sq.Insert("episodes").
		Columns("run_id", "phase", "epoch", "batch", "input", "message", "chosen_index", "reward").
		Values(runID, e.Phase, e.Epoch, e.Batch, input, e.Message, e.ChosenIndex, e.Reward).
		ToSql()
}

// buildLocalGetRunQuery assembles the local-store run lookup.
func buildLocalGetRunQuery(runID string) (string, []any, error) {
	return sq.Select(runColumns...).
		From("runs").
		Where(sq.Eq{"run_id": runID}).
		ToSql()
}
