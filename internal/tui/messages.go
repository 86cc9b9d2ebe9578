package tui

import "github.com/MKhiriev/refgame/internal/trainer"

// progressMsg carries the next trainer event into the bubbletea loop.
type progressMsg trainer.Event

// trainingDoneMsg is delivered when the trainer closes the event channel.
type trainingDoneMsg struct{}

// copiedMsg reports the outcome of a copy-to-clipboard command.
type copiedMsg struct {
	err error
}
