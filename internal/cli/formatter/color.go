package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rcamargo/pdiflow/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
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
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success renders a green confirmation line.
func Success(text string) string {
	return StyleGreen.Render(text)
}

// Warn renders a yellow warning line.
func Warn(text string) string {
	return StyleYellow.Render(text)
}

// Fail renders a red error line.
func Fail(text string) string {
	return StyleRed.Render(text)
}

// FreshnessLabel renders the state of a stored answer with its age.
func FreshnessLabel(f domain.Freshness, ageDays *int) string {
	switch f {
	case domain.FreshnessFresh:
		return StyleGreen.Render(fmt.Sprintf("● atual (%d dias)", *ageDays))
	case domain.FreshnessStale:
		if ageDays == nil {
			return StyleYellow.Render("● desatualizada (data desconhecida)")
		}
		return StyleYellow.Render(fmt.Sprintf("● desatualizada (%d dias)", *ageDays))
	default:
		return StyleDim.Render("● sem resposta")
	}
}

// Truncate shortens s to at most max visible characters, appending an
// ellipsis when it cuts. Newlines are flattened first.
func Truncate(s string, max int) string {
	flat := strings.Join(strings.Fields(s), " ")
	runes := []rune(flat)
	if len(runes) <= max {
		return flat
	}
	if max <= 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
