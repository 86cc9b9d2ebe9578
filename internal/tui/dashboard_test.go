package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/refgame/internal/trainer"
)

func trainingEvent(epoch, batch int, reward float64) progressMsg {
	return progressMsg(trainer.Event{
		Stage:      trainer.StageTraining,
		Epoch:      epoch,
		Epochs:     2,
		Batch:      batch,
		Batches:    4,
		MeanReward: reward,
	})
}

func TestDashboard_TracksTrainingProgress(t *testing.T) {
	m := newDashboardModel("run-1", "symbolic-default", nil)

	updated, cmd := m.Update(trainingEvent(1, 2, 0.5))
	require.NotNil(t, cmd)
	m = updated.(dashboardModel)

	assert.Equal(t, trainer.StageTraining, m.latest.Stage)
	assert.Equal(t, []float64{0.5}, m.rewards)
	assert.InDelta(t, 0.25, m.fraction(), 1e-9)

	view := m.View()
	assert.Contains(t, view, "epoch 1/2")
	assert.Contains(t, view, "batch 2/4")
	assert.Contains(t, view, "run-1")
	assert.Contains(t, view, "symbolic-default")
}

func TestDashboard_EvaluationDoesNotFeedSparkline(t *testing.T) {
	m := newDashboardModel("run-1", "symbolic-default", nil)

	updated, _ := m.Update(progressMsg(trainer.Event{
		Stage:      trainer.StageEvaluating,
		MeanReward: 0.9,
	}))
	m = updated.(dashboardModel)

	assert.Empty(t, m.rewards)
	assert.Contains(t, m.View(), "evaluating")
}

func TestDashboard_QuitKeys(t *testing.T) {
	m := newDashboardModel("run-1", "symbolic-default", nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(dashboardModel)

	assert.True(t, m.quitByUser)
	require.NotNil(t, cmd)
}

func TestDashboard_DoneQuits(t *testing.T) {
	m := newDashboardModel("run-1", "symbolic-default", nil)

	updated, cmd := m.Update(trainingDoneMsg{})
	m = updated.(dashboardModel)

	assert.True(t, m.done)
	require.NotNil(t, cmd)
}

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", sparkline(nil, 10))
	assert.Equal(t, "▁█", sparkline([]float64{0, 1}, 10))

	// Out-of-range values clamp instead of panicking.
	assert.Equal(t, "▁█", sparkline([]float64{-3, 7}, 10))

	// Longer series keep only the trailing window.
	got := sparkline([]float64{0, 0, 0, 1, 1}, 2)
	assert.Equal(t, 2, strings.Count(got, "█"))
}
