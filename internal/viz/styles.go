package viz

import "github.com/charmbracelet/lipgloss"

var (
	HeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	LabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	ValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	HelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	CanvasStyle = lipgloss.NewStyle().Padding(0, 1)

	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
)

// Verdict renders the final pass/fail line of a run.
func Verdict(passed bool) string {
	if passed {
		return passStyle.Render("Final wavefields from parallel and serial drivers are equivalent: Success")
	}
	return failStyle.Render("Final wavefields from parallel and serial drivers are different: Error")
}
