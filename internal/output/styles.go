package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Named constants for every ANSI 256 color used in the CLI.
var (
	// ColorCyan is used for identifiable nouns: project names, template names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorBlue is used for table headers.
	ColorBlue = lipgloss.Color("12")

	// ColorYellow is used for prompts that ask the user to confirm.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome and secondary descriptions.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles headings and the tree root.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleWarn styles confirmation prompts.
	StyleWarn = lipgloss.NewStyle().Foreground(ColorYellow)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatNextSteps renders a numbered "Next steps" block.
func FormatNextSteps(steps []string) string {
	if len(steps) == 0 {
		return ""
	}
	out := StyleBold.Render("Next steps:") + "\n"
	for _, s := range steps {
		out += "  " + s + "\n"
	}
	return out
}
