// Package tui renders the live training dashboard: stage, epoch and batch
// progress, a reward sparkline, and the run ID with copy-to-clipboard.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/refgame/internal/trainer"
)

// ErrUserQuit is returned when the operator quits the dashboard before the
// run finishes. The trainer is expected to stop via context cancellation.
var ErrUserQuit = errors.New("dashboard closed by user")

// Run drives the dashboard until the event channel closes or the user quits.
// The caller feeds events from [trainer.WithProgress] through a channel so
// the training loop never blocks on terminal rendering.
func Run(ctx context.Context, runID, experiment string, events <-chan trainer.Event) error {
	model := newDashboardModel(runID, experiment, events)

	finalModel, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(dashboardModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
