package menu

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette, matching the board colors used for status columns.
var (
	accentColor  = lipgloss.AdaptiveColor{Light: "#3B6FD8", Dark: "#54A0FF"}
	successColor = lipgloss.AdaptiveColor{Light: "#0F8A3C", Dark: "#73F59F"}
	failureColor = lipgloss.AdaptiveColor{Light: "#C53030", Dark: "#FF8787"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BBBBBB"}
)

// styles holds the rendered look of menu output. All styles come from one
// renderer bound to the menu's writer, so a buffer or pipe gets no escapes.
type styles struct {
	frame   lipgloss.Style
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	info    lipgloss.Style
}

func newStyles(w io.Writer, plain bool) styles {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
		return styles{
			frame:   r.NewStyle(),
			title:   r.NewStyle(),
			success: r.NewStyle(),
			failure: r.NewStyle(),
			info:    r.NewStyle(),
		}
	}

	return styles{
		frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1),
		title:   r.NewStyle().Bold(true).Foreground(accentColor),
		success: r.NewStyle().Foreground(successColor),
		failure: r.NewStyle().Foreground(failureColor),
		info:    r.NewStyle().Foreground(mutedColor),
	}
}
