// Package ui renders genova's terminal output: the banner, phase messages,
// the spinner shown while quiet commands run, and the closing summary.
// Every component degrades to plain text when color is disabled or no
// terminal is attached.
package ui

import "github.com/charmbracelet/lipgloss"

// Brand palette (dark background variants).
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorText      = "#F9FAFB"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// Palette holds the colors a Theme renders with.
type Palette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// Theme bundles the palette with the no-color switch.
type Theme struct {
	NoColor bool
	Colors  Palette
}

// NewTheme returns the default theme. With noColor every style renders
// plain text.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Palette{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Muted:     ColorMuted,
		},
	}
}

// Adaptive pairs a light-background color with each dark palette entry.
var (
	AdaptivePrimary   = lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary}
	AdaptiveSecondary = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary}
	AdaptiveSuccess   = lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	AdaptiveWarning   = lipgloss.AdaptiveColor{Light: "#D97706", Dark: ColorWarning}
	AdaptiveError     = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	AdaptiveText      = lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	AdaptiveMuted     = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: ColorMuted}
	AdaptiveBorder    = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}
)

func (t *Theme) style(c lipgloss.AdaptiveColor) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Primary styles headings and the banner.
func (t *Theme) Primary() lipgloss.Style { return t.style(AdaptivePrimary).Bold(!t.NoColor) }

// Success styles completion messages.
func (t *Theme) Success() lipgloss.Style { return t.style(AdaptiveSuccess) }

// Warning styles non-fatal problems.
func (t *Theme) Warning() lipgloss.Style { return t.style(AdaptiveWarning) }

// Error styles fatal problems.
func (t *Theme) Error() lipgloss.Style { return t.style(AdaptiveError) }

// Muted styles secondary information.
func (t *Theme) Muted() lipgloss.Style { return t.style(AdaptiveMuted) }

// Card is a rounded box used for the banner.
func (t *Theme) Card() lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())
	if !t.NoColor {
		s = s.BorderForeground(AdaptivePrimary)
	}
	return s
}
