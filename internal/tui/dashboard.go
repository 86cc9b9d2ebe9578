package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/refgame/internal/trainer"
)

const sparklineWidth = 40

type dashboardModel struct {
	runID      string
	experiment string

	events <-chan trainer.Event

	latest  trainer.Event
	rewards []float64

	progress progress.Model

	status     string
	quitByUser bool
	done       bool
}

func newDashboardModel(runID, experiment string, events <-chan trainer.Event) dashboardModel {
	return dashboardModel{
		runID:      runID,
		experiment: experiment,
		events:     events,
		progress:   progress.New(progress.WithDefaultGradient()),
	}
}

// waitForEvent blocks on the trainer's event channel and converts the next
// event into a bubbletea message.
func (m dashboardModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-m.events
		if !ok {
			return trainingDoneMsg{}
		}
		return progressMsg(event)
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.latest = trainer.Event(msg)
		if m.latest.Stage == trainer.StageTraining {
			m.rewards = append(m.rewards, m.latest.MeanReward)
		}
		return m, m.waitForEvent()

	case trainingDoneMsg:
		m.done = true
		return m, tea.Quit

	case copiedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("copy failed: %v", msg.err))
		} else {
			m.status = "run ID copied"
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyRunID()
		}
	}

	return m, nil
}

func (m dashboardModel) cmdCopyRunID() tea.Cmd {
	runID := m.runID
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(runID)}
	}
}

func (m dashboardModel) View() string {
	header := titleStyle.Render(m.experiment) + helpStyle.Render("  run "+m.runID)

	stage := stageStyle.Render(string(m.latest.Stage))
	if m.latest.Stage == "" {
		stage = stageStyle.Render("starting")
	}

	var body string
	switch m.latest.Stage {
	case trainer.StageTraining:
		body = fmt.Sprintf(
			"epoch %d/%d  batch %d/%d\n%s\n\nmean reward %.3f\n%s",
			m.latest.Epoch, m.latest.Epochs,
			m.latest.Batch, m.latest.Batches,
			m.progress.ViewAs(m.fraction()),
			m.latest.MeanReward,
			rewardStyle.Render(sparkline(m.rewards, sparklineWidth)),
		)
	case trainer.StageEvaluating:
		body = fmt.Sprintf("evaluating held-out set...\naccuracy so far %.3f", m.latest.MeanReward)
	case trainer.StageDone:
		body = fmt.Sprintf("testing accuracy %.3f", m.latest.MeanReward)
	default:
		body = "generating dataset..."
	}

	status := m.status
	help := helpStyle.Render("c copy run ID • q quit")

	return appStyle.Render(header + "\n\n" + stage + "\n" + body + "\n\n" + status + "\n" + help)
}

// fraction maps the current epoch/batch position to overall progress.
func (m dashboardModel) fraction() float64 {
	if m.latest.Epochs == 0 || m.latest.Batches == 0 {
		return 0
	}
	total := float64(m.latest.Epochs * m.latest.Batches)
	completed := float64((m.latest.Epoch-1)*m.latest.Batches + m.latest.Batch)
	if completed > total {
		completed = total
	}
	return completed / total
}
