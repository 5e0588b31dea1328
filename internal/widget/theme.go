package widget

import "github.com/charmbracelet/lipgloss"

const (
	colorText   lipgloss.Color = "#cdd6f4"
	colorAccent lipgloss.Color = "#89b4fa"
	colorSubtle lipgloss.Color = "#6c7086"
)

var (
	// TextStyle renders plain body text.
	TextStyle = lipgloss.NewStyle().Foreground(colorText)

	// BoldStyle renders emphasized body text.
	BoldStyle = TextStyle.Bold(true)

	// TitleStyle renders headings.
	TitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	// BannerStyle frames a heading in a rounded border.
	BannerStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)

	// CardStyle frames composed content.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSubtle).
			Padding(0, 1)
)
