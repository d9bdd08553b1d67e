package prompt

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/poonai/ginit/internal/errors"
)

// TUI asks questions with small bubbletea programs, one per question.
type TUI struct {
	opts []tea.ProgramOption
}

// NewTUI returns a TUI; opts are passed to every program (input/output
// overrides in tests).
func NewTUI(opts ...tea.ProgramOption) *TUI {
	return &TUI{opts: opts}
}

func (t *TUI) Input(q Question) (string, error) {
	final, err := t.run(newInputModel(q))
	if err != nil {
		return "", err
	}
	m := final.(*inputModel)
	if m.aborted {
		return "", errors.Aborted()
	}
	return m.value(), nil
}

func (t *TUI) Select(label string, options []string, def string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("select %q: no options", label)
	}
	final, err := t.run(newChoiceModel(label, options, []string{def}, false))
	if err != nil {
		return "", err
	}
	m := final.(*choiceModel)
	if m.aborted {
		return "", errors.Aborted()
	}
	return m.options[m.cursor], nil
}

func (t *TUI) MultiSelect(label string, options []string, defaults []string) ([]string, error) {
	if len(options) == 0 {
		return nil, nil
	}
	final, err := t.run(newChoiceModel(label, options, defaults, true))
	if err != nil {
		return nil, err
	}
	m := final.(*choiceModel)
	if m.aborted {
		return nil, errors.Aborted()
	}
	return m.chosen(), nil
}

func (t *TUI) run(m tea.Model) (tea.Model, error) {
	final, err := tea.NewProgram(m, t.opts...).Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}
