package ui

import (
	"io"
	"time"

	"github.com/theckman/yacspin"
)

// Progress runs a blocking step while telling the user what is happening.
type Progress interface {
	Do(message string, fn func() error) error
}

// Quiet runs steps without any output.
type Quiet struct{}

// Do runs fn.
func (Quiet) Do(_ string, fn func() error) error {
	return fn()
}

// Spinner shows a terminal spinner while a step runs.
type Spinner struct {
	w io.Writer
}

// NewSpinner returns a Spinner drawing on w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{w: w}
}

// Do runs fn behind a spinner. A spinner that cannot start never prevents
// the step from running.
func (s *Spinner) Do(message string, fn func() error) error {
	spinner, err := yacspin.New(yacspin.Config{
		Writer:            s.w,
		Frequency:         100 * time.Millisecond,
		CharSet:           yacspin.CharSets[14],
		Suffix:            " ",
		Message:           message,
		StopCharacter:     "✓",
		StopColors:        []string{"fgGreen"},
		StopFailCharacter: "✗",
		StopFailColors:    []string{"fgRed"},
	})
	if err != nil {
		return fn()
	}
	if err := spinner.Start(); err != nil {
		return fn()
	}

	if err := fn(); err != nil {
		_ = spinner.StopFail()
		return err
	}
	_ = spinner.Stop()
	return nil
}
