package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ThemeStyle returns the color used for a POI theme.
func ThemeStyle(theme string) lipgloss.Style {
	switch theme {
	case "heritage":
		return StyleYellow
	case "nightlife":
		return StylePurple
	case "adventure":
		return StyleRed
	case "leisure":
		return StyleAqua
	case "family":
		return StyleGreen
	case "shopping":
		return StyleBlue
	default:
		return StyleDim
	}
}

// ThemeBadge renders a capitalized theme label in its theme color.
func ThemeBadge(theme string) string {
	if theme == "" {
		return StyleDim.Render("--")
	}
	return ThemeStyle(theme).Render(strings.ToUpper(theme[:1]) + theme[1:])
}

// ModeIcon returns a short glyph for a travel mode.
func ModeIcon(mode domain.TravelMode) string {
	switch mode {
	case domain.ModeFlight:
		return "✈"
	case domain.ModeTrain:
		return "🚆"
	case domain.ModeBus:
		return "🚌"
	case domain.ModeCab:
		return "🚕"
	default:
		return "•"
	}
}

// ModeBadge renders a travel mode with its icon.
func ModeBadge(mode domain.TravelMode) string {
	return StyleBlue.Render(fmt.Sprintf("%s %s", ModeIcon(mode), titleCase(string(mode))))
}

// RatingBadge colors a 0-5 rating: green from 4.3, yellow from 3.8, red below.
func RatingBadge(r float64) string {
	text := fmt.Sprintf("★ %.1f", r)
	switch {
	case r >= 4.3:
		return StyleGreen.Render(text)
	case r >= 3.8:
		return StyleYellow.Render(text)
	case r > 0:
		return StyleRed.Render(text)
	default:
		return StyleDim.Render("★ --")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
