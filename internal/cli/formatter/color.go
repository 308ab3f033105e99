package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// StepHeader renders a wizard progress header such as "Étape 3/8 — Titre".
func StepHeader(index, total int, title string) string {
	return fmt.Sprintf("%s %s",
		StyleDim.Render(fmt.Sprintf("Étape %d/%d", index+1, total)),
		StyleBold.Render(title))
}

// Success renders a green checkmark line.
func Success(text string) string {
	return StyleGreen.Render("✓ ") + StyleFg.Render(text)
}

// Warning renders a yellow warning line.
func Warning(text string) string {
	return StyleYellow.Render("⚠ ") + StyleFg.Render(text)
}

// Failure renders a red cross line.
func Failure(text string) string {
	return StyleRed.Render("✗ ") + StyleFg.Render(text)
}

// ArtifactLine renders one artifact's progress row for the wait view. The
// frame is expected to be styled already.
func ArtifactLine(label string, done bool, frame string) string {
	if done {
		return fmt.Sprintf("  %s %s", StyleGreen.Render("✓"), StyleFg.Render(label))
	}
	return fmt.Sprintf("  %s %s", frame, Dim(label))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
