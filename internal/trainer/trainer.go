// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package trainer

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/refgame/internal/agents"
	"github.com/MKhiriev/refgame/internal/game"
	"github.com/MKhiriev/refgame/internal/introspect"
	"github.com/MKhiriev/refgame/internal/logger"
	"github.com/MKhiriev/refgame/internal/utils"
	"github.com/MKhiriev/refgame/internal/workers"
	"github.com/MKhiriev/refgame/models"
)

// Train and test sets share the experiment seed but never a random stream.
const (
	trainSeedOffset = 0
	testSeedOffset  = 1
)

// Stage labels a progress event.
type Stage string

const (
	StageGenerating Stage = "generating"
	StageTraining   Stage = "training"
	StageEvaluating Stage = "evaluating"
	StageDone       Stage = "done"
)

// Event is a progress report emitted between batches. MeanReward is the
// running mean over the episodes played so far in the current phase.
type Event struct {
	Stage      Stage
	Epoch      int
	Epochs     int
	Batch      int
	Batches    int
	MeanReward float64
}

// Result is everything one finished run produced.
type Result struct {
	Run      models.Run
	Training []models.Episode
	Testing  []models.Episode
	Lexicon  []introspect.LexiconEntry
}

// Option configures a Trainer.
type Option func(*Trainer)

// WithProgress registers a callback invoked synchronously after every batch
// and evaluation pass. The callback must not block for long.
func WithProgress(fn func(Event)) Option {
	return func(t *Trainer) { t.progress = fn }
}

// WithParallelism bounds the goroutines used by the evaluation pass.
func WithParallelism(n int) Option {
	return func(t *Trainer) { t.parallelism = n }
}

// WithRunID fixes the run identifier instead of generating one. Callers that
// display or archive the ID before the run finishes need to know it up front.
func WithRunID(runID string) Option {
	return func(t *Trainer) { t.runID = runID }
}

// Trainer drives an experiment through its full lifecycle: dataset
// generation, REINFORCE training, greedy evaluation, and protocol
// introspection.
type Trainer struct {
	log         *logger.Logger
	progress    func(Event)
	parallelism int
	runID       string
}

func New(log *logger.Logger, opts ...Option) *Trainer {
	t := &Trainer{log: log}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Run executes the experiment. The returned Result is valid even on error:
// its Run record carries status failed and whatever episodes were recorded
// before the failure, so callers can persist partial runs.
func (t *Trainer) Run(ctx context.Context, exp models.Experiment) (*Result, error) {
	runID := t.runID
	if runID == "" {
		runID = utils.NewUUIDGenerator().Generate()
	}

	result := &Result{
		Run: models.Run{
			RunID:      runID,
			Name:       exp.Name,
			Status:     models.RunPending,
			Experiment: exp,
			StartedAt:  time.Now(),
		},
	}

	log := t.log.With().
		Str("run_id", result.Run.RunID).
		Str("experiment", exp.Name).
		Logger()
	log.Info().
		Str("dataset", string(exp.Dataset.Kind)).
		Str("agents", string(exp.Agents.Kind)).
		Int("epochs", exp.Training.Epochs).
		Msg("run started")

	err := t.run(ctx, exp, result)
	result.Run.FinishedAt = time.Now()
	if err != nil {
		result.Run.Status = models.RunFailed
		log.Error().Err(err).Msg("run failed")
		return result, err
	}

	result.Run.Status = models.RunFinished
	log.Info().
		Float64("training_reward", result.Run.Summary.TrainingReward).
		Float64("testing_accuracy", result.Run.Summary.TestingAccuracy).
		Float64("topographic_similarity", result.Run.Summary.TopographicSimilarity).
		Msg("run finished")
	return result, nil
}

func (t *Trainer) run(ctx context.Context, exp models.Experiment, result *Result) error {
	t.emit(Event{Stage: StageGenerating, Epochs: exp.Training.Epochs})

	trainSet, testSet, err := t.generate(exp.Dataset)
	if err != nil {
		return err
	}

	if exp.Training.Epochs < 1 || exp.Training.BatchSize < 1 {
		return fmt.Errorf("%w: epochs=%d batch_size=%d",
			ErrInvalidTrainingSpec, exp.Training.Epochs, exp.Training.BatchSize)
	}

	pair, err := agents.NewPair(exp)
	if err != nil {
		return fmt.Errorf("build agents: %w", err)
	}

	result.Run.Status = models.RunRunning

	if err := t.train(ctx, exp, pair, trainSet, result); err != nil {
		return err
	}
	if err := t.evaluate(ctx, exp, pair, testSet, result); err != nil {
		return err
	}

	t.summarize(result)
	t.emit(Event{
		Stage:      StageDone,
		Epoch:      exp.Training.Epochs,
		Epochs:     exp.Training.Epochs,
		MeanReward: result.Run.Summary.TestingAccuracy,
	})
	return nil
}

func (t *Trainer) generate(spec models.DatasetSpec) (train, test *models.Dataset, err error) {
	trainGen, err := game.NewGenerator(spec, trainSeedOffset)
	if err != nil {
		return nil, nil, fmt.Errorf("training dataset: %w", err)
	}
	train, err = trainGen.Generate(spec.TrainSize)
	if err != nil {
		return nil, nil, fmt.Errorf("training dataset: %w", err)
	}

	testGen, err := game.NewGenerator(spec, testSeedOffset)
	if err != nil {
		return nil, nil, fmt.Errorf("testing dataset: %w", err)
	}
	test, err = testGen.Generate(spec.TestSize)
	if err != nil {
		return nil, nil, fmt.Errorf("testing dataset: %w", err)
	}
	return train, test, nil
}

// train plays the training set epoch by epoch. Rounds inside a batch are
// played sequentially against frozen policies; both policies update once per
// batch, including the trailing partial batch.
func (t *Trainer) train(ctx context.Context, exp models.Experiment, pair agents.Pair, set *models.Dataset, result *Result) error {
	batchSize := exp.Training.BatchSize
	batches := (len(set.Samples) + batchSize - 1) / batchSize

	rewardSum := 0.0
	for epoch := 1; epoch <= exp.Training.Epochs; epoch++ {
		for b := 0; b < batches; b++ {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("training interrupted: %w", err)
			}

			lo := b * batchSize
			hi := lo + batchSize
			if hi > len(set.Samples) {
				hi = len(set.Samples)
			}

			batch := make([]agents.Experience, 0, hi-lo)
			for _, sample := range set.Samples[lo:hi] {
				experience, err := playRound(pair, sample, false)
				if err != nil {
					return fmt.Errorf("epoch %d batch %d: %w", epoch, b, err)
				}
				batch = append(batch, experience)
				rewardSum += experience.Reward

				result.Training = append(result.Training, models.Episode{
					RunID:       result.Run.RunID,
					Phase:       models.PhaseTraining,
					Epoch:       epoch,
					Batch:       b,
					Input:       experience.Target,
					Message:     experience.Message.String(),
					ChosenIndex: experience.Choice,
					Reward:      int(experience.Reward),
				})
			}

			if err := pair.Speaker.Train(batch); err != nil {
				return fmt.Errorf("speaker update: %w", err)
			}
			if err := pair.Listener.Train(batch); err != nil {
				return fmt.Errorf("listener update: %w", err)
			}

			t.emit(Event{
				Stage:      StageTraining,
				Epoch:      epoch,
				Epochs:     exp.Training.Epochs,
				Batch:      b + 1,
				Batches:    batches,
				MeanReward: rewardSum / float64(len(result.Training)),
			})
		}
	}
	return nil
}

// evaluate plays the held-out set greedily. Policies are frozen here, so
// rounds fan out over a worker pool; results land by index to keep the
// episode series in dataset order.
func (t *Trainer) evaluate(ctx context.Context, exp models.Experiment, pair agents.Pair, set *models.Dataset, result *Result) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("evaluation interrupted: %w", err)
	}

	episodes := make([]models.Episode, len(set.Samples))
	errs := make([]error, len(set.Samples))
	workers.Parallel(t.parallelism, len(set.Samples), func(i int) {
		// Cancellation mid-pass skips the remaining rounds.
		if err := ctx.Err(); err != nil {
			errs[i] = err
			return
		}
		experience, err := playRound(pair, set.Samples[i], true)
		if err != nil {
			errs[i] = err
			return
		}
		episodes[i] = models.Episode{
			RunID:       result.Run.RunID,
			Phase:       models.PhaseTesting,
			Input:       experience.Target,
			Message:     experience.Message.String(),
			ChosenIndex: experience.Choice,
			Reward:      int(experience.Reward),
		}
	})
	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("evaluation: %w", err)
		}
	}

	result.Testing = episodes

	mean := 0.0
	for _, e := range episodes {
		mean += float64(e.Reward)
	}
	if len(episodes) > 0 {
		mean /= float64(len(episodes))
	}
	t.emit(Event{
		Stage:      StageEvaluating,
		Epoch:      exp.Training.Epochs,
		Epochs:     exp.Training.Epochs,
		MeanReward: mean,
	})
	return nil
}

// playRound runs one referential round: the speaker describes the target,
// the listener picks among the candidates. Greedy selects the argmax path
// on both sides; otherwise both sample from their policies.
func playRound(pair agents.Pair, sample models.Sample, greedy bool) (agents.Experience, error) {
	target := sample.Candidates[sample.TargetIndex]

	var (
		message models.Message
		err     error
	)
	if greedy {
		message, err = pair.Speaker.Infer(target)
	} else {
		message, err = pair.Speaker.Sample(target)
	}
	if err != nil {
		return agents.Experience{}, fmt.Errorf("speaker: %w", err)
	}

	var choice int
	if greedy {
		choice, err = pair.Listener.Infer(message, sample.Candidates)
	} else {
		choice, err = pair.Listener.Sample(message, sample.Candidates)
	}
	if err != nil {
		return agents.Experience{}, fmt.Errorf("listener: %w", err)
	}

	return agents.Experience{
		Target:     target,
		Candidates: sample.Candidates,
		Message:    message,
		Choice:     choice,
		Reward:     float64(game.Reward(choice, sample.TargetIndex)),
	}, nil
}

// summarize fills the run summary and the lexicon from the recorded series.
func (t *Trainer) summarize(result *Result) {
	summary := &result.Run.Summary
	summary.TrainingEpisodes = len(result.Training)
	summary.TestingEpisodes = len(result.Testing)

	for _, e := range result.Training {
		summary.TrainingReward += float64(e.Reward)
	}
	if len(result.Training) > 0 {
		summary.TrainingReward /= float64(len(result.Training))
	}

	inputs := make([][]float64, len(result.Testing))
	messages := make([]models.Message, len(result.Testing))
	for i, e := range result.Testing {
		summary.TestingAccuracy += float64(e.Reward)
		inputs[i] = e.Input
		msg, err := models.ParseMessage(e.Message)
		if err != nil {
			// recorded by this process, cannot happen
			continue
		}
		messages[i] = msg
	}
	if len(result.Testing) > 0 {
		summary.TestingAccuracy /= float64(len(result.Testing))
	}

	summary.TopographicSimilarity, summary.TopographicDefined = introspect.TopographicSimilarity(inputs, messages)
	result.Lexicon = introspect.BuildLexicon(messages)
}

func (t *Trainer) emit(e Event) {
	if t.progress != nil {
		t.progress(e)
	}
}
