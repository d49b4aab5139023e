package cli

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// statusTag renders a fixed-width doctor tag such as "[ OK ]".
func statusTag(tag string) string {
	label := "[" + tag + "]"
	switch tag {
	case " OK ":
		return okStyle.Render(label)
	case "WARN", "MISS":
		return warnStyle.Render(label)
	case "INFO":
		return label
	default:
		return failStyle.Render(label)
	}
}
