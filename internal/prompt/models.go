package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/poonai/ginit/internal/ui"
)

type inputModel struct {
	question Question
	input    textinput.Model
	done     bool
	aborted  bool
}

func newInputModel(q Question) *inputModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = q.Default
	if q.Secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.Focus()
	return &inputModel{question: q, input: ti}
}

func (m *inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *inputModel) View() string {
	label := ui.QuestionStyle.Render(m.question.Label)
	if m.done || m.aborted {
		shown := m.value()
		if m.question.Secret {
			shown = strings.Repeat("•", len(shown))
		}
		return label + " " + ui.AnswerStyle.Render(shown) + "\n"
	}

	var b strings.Builder
	b.WriteString(label + "\n")
	b.WriteString(m.input.View() + "\n")
	if m.question.Problem != "" {
		b.WriteString(ui.ProblemStyle.Render(m.question.Problem) + "\n")
	}
	return b.String()
}

// value is the typed text, or the default when nothing was typed.
func (m *inputModel) value() string {
	if v := m.input.Value(); v != "" {
		return v
	}
	return m.question.Default
}

// choiceModel is a vertical list. In multi mode space toggles entries;
// otherwise enter picks the entry under the cursor.
type choiceModel struct {
	label    string
	options  []string
	multi    bool
	cursor   int
	selected map[int]bool
	done     bool
	aborted  bool
}

func newChoiceModel(label string, options, defaults []string, multi bool) *choiceModel {
	m := &choiceModel{
		label:    label,
		options:  options,
		multi:    multi,
		selected: make(map[int]bool),
	}
	for _, d := range defaults {
		for i, o := range options {
			if o != d {
				continue
			}
			if multi {
				m.selected[i] = true
			} else {
				m.cursor = i
			}
		}
	}
	return m
}

func (m *choiceModel) Init() tea.Cmd {
	return nil
}

func (m *choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc", "q":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case " ":
		if m.multi {
			m.selected[m.cursor] = !m.selected[m.cursor]
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *choiceModel) View() string {
	label := ui.QuestionStyle.Render(m.label)
	if m.done || m.aborted {
		answer := m.options[m.cursor]
		if m.multi {
			answer = strings.Join(m.chosen(), ", ")
		}
		return label + " " + ui.AnswerStyle.Render(answer) + "\n"
	}

	var b strings.Builder
	b.WriteString(label + "\n")
	for i, o := range m.options {
		cursor := "  "
		if i == m.cursor {
			cursor = ui.CursorStyle.Render("› ")
		}
		box := ""
		if m.multi {
			box = "◯ "
			if m.selected[i] {
				box = ui.CursorStyle.Render("◉ ")
			}
		}
		b.WriteString(cursor + box + o + "\n")
	}
	if m.multi {
		b.WriteString(ui.HintStyle.Render("space to toggle, enter to confirm") + "\n")
	}
	return b.String()
}

// chosen returns the selected options in listing order.
func (m *choiceModel) chosen() []string {
	var out []string
	for i, o := range m.options {
		if m.selected[i] {
			out = append(out, o)
		}
	}
	return out
}
