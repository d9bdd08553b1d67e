package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7F5283")).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#EB1D36"))

	SuccessStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3EC70B"))
	QuestionStyle = lipgloss.NewStyle().Bold(true)
	AnswerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F5283"))
	CursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F5283")).Bold(true)
	HintStyle     = lipgloss.NewStyle().Faint(true)
	ProblemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EB1D36"))
)

// Banner is the title printed when the tool starts.
func Banner(name string) string {
	return TitleStyle.Render(name) + " " + HintStyle.Render("create a GitHub repository for this directory")
}

// RenderError styles an error message for the terminal.
func RenderError(msg string) string {
	return ErrorStyle.Render(msg)
}

// RenderSuccess styles a success message for the terminal.
func RenderSuccess(msg string) string {
	return SuccessStyle.Render(msg)
}
