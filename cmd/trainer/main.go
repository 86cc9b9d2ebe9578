package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/refgame/internal/adapter"
	"github.com/MKhiriev/refgame/internal/config"
	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/internal/service"
	"github.com/MKhiriev/refgame/internal/store"
	"github.com/MKhiriev/refgame/internal/trainer"
	"github.com/MKhiriev/refgame/internal/tui"
	"github.com/MKhiriev/refgame/internal/utils"
	"github.com/MKhiriev/refgame/internal/watch"
	"github.com/MKhiriev/refgame/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewTrainerLogger("refgame-trainer")
	cfg, err := config.GetTrainerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := store.NewConnectSQLite(ctx, cfg.Local.DBPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening local run store")
	}
	defer db.Close()
	localRuns := store.NewLocalRunStore(db, log)

	tracker, err := adapter.NewHTTPTrackerAdapter(cfg.Tracker, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating tracker adapter")
	}

	services := service.NewClientServices(tracker, cfg.Tracker, log)

	app := &app{
		cfg:      cfg,
		services: services,
		local:    localRuns,
		logger:   log,
	}

	if cfg.WatchDir != "" {
		err = app.watchAndRun(ctx)
	} else {
		err = app.runOnce(ctx, cfg.ExperimentFile)
	}
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, tui.ErrUserQuit) {
		log.Fatal().Err(err).Msg("trainer run error")
	}
}

// app wires the trainer pipeline to its configuration and storage.
type app struct {
	cfg      *config.TrainerConfig
	services *service.ClientServices
	local    store.LocalRunStore
	logger   *logger.Logger
}

// runOnce loads one experiment definition, runs it, archives the result
// locally, and publishes to the tracker when the experiment requests it.
func (a *app) runOnce(ctx context.Context, experimentFile string) error {
	exp, err := a.services.ExperimentService.Load(ctx, experimentFile)
	if err != nil {
		return err
	}

	result, err := a.runExperiment(ctx, exp)
	if result != nil && result.Run.RunID != "" {
		if saveErr := a.archive(ctx, result); saveErr != nil {
			a.logger.Err(saveErr).Str("run_id", result.Run.RunID).Msg("archiving run locally failed")
		}
	}
	if err != nil {
		return err
	}

	a.logLexicon(result)

	if exp.Publish {
		if err = a.services.PublisherService.Publish(ctx, result); err != nil {
			return fmt.Errorf("publishing run failed: %w", err)
		}
	}

	return nil
}

// watchAndRun runs every experiment file that appears in the watch directory
// until the context is cancelled.
func (a *app) watchAndRun(ctx context.Context) error {
	watcher, err := watch.NewWatcher(a.cfg.WatchDir, a.logger)
	if err != nil {
		return err
	}
	if err = watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case path := <-watcher.Files():
			if err = a.runOnce(ctx, path); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, tui.ErrUserQuit) {
					return err
				}
				// One broken experiment file must not stop watch mode.
				a.logger.Err(err).Str("path", path).Msg("experiment run failed")
			}
		}
	}
}

// runExperiment executes the pipeline, optionally behind the live dashboard.
func (a *app) runExperiment(ctx context.Context, exp models.Experiment) (*trainer.Result, error) {
	if !a.cfg.UI {
		return trainer.New(a.logger).Run(ctx, exp)
	}

	runID := utils.NewUUIDGenerator().Generate()
	events := make(chan trainer.Event)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	tr := trainer.New(a.logger,
		trainer.WithRunID(runID),
		trainer.WithProgress(func(e trainer.Event) {
			// Guarded by the run context: once the dashboard quits nobody
			// reads events, and cancel() is what unblocks the pipeline.
			select {
			case events <- e:
			case <-runCtx.Done():
			}
		}))

	type runOutcome struct {
		result *trainer.Result
		err    error
	}
	outcome := make(chan runOutcome, 1)
	go func() {
		result, err := tr.Run(runCtx, exp)
		close(events)
		outcome <- runOutcome{result: result, err: err}
	}()

	uiErr := tui.Run(runCtx, runID, exp.Name, events)
	if errors.Is(uiErr, tui.ErrUserQuit) {
		cancel()
	}

	done := <-outcome
	if done.err != nil {
		return done.result, done.err
	}
	if uiErr != nil {
		return done.result, uiErr
	}
	return done.result, nil
}

// archive stores the run and both episode series in the local SQLite store.
func (a *app) archive(ctx context.Context, result *trainer.Result) error {
	if err := a.local.SaveRun(ctx, result.Run); err != nil {
		return err
	}
	if len(result.Training) > 0 {
		if err := a.local.SaveEpisodes(ctx, result.Run.RunID, result.Training); err != nil {
			return err
		}
	}
	if len(result.Testing) > 0 {
		if err := a.local.SaveEpisodes(ctx, result.Run.RunID, result.Testing); err != nil {
			return err
		}
	}

	a.logger.Info().Str("run_id", result.Run.RunID).Msg("run archived locally")
	return nil
}

// logLexicon reports the most used messages of the evaluation pass.
func (a *app) logLexicon(result *trainer.Result) {
	summary := result.Run.Summary
	a.logger.Info().
		Str("run_id", result.Run.RunID).
		Float64("testing_accuracy", summary.TestingAccuracy).
		Float64("topographic_similarity", summary.TopographicSimilarity).
		Bool("topographic_defined", summary.TopographicDefined).
		Msg("run finished")

	top := result.Lexicon
	if len(top) > 5 {
		top = top[:5]
	}
	for _, entry := range top {
		a.logger.Info().
			Str("message", entry.Message).
			Int("count", entry.Count).
			Msg("lexicon entry")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
