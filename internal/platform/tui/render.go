package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/huematch/internal/core"
)

type cellStyle struct {
	fg, bg core.Color
}

// ScreenRenderer converts Screen buffers to styled strings. Styles are cached
// per color pair, so a renderer should live as long as its model.
type ScreenRenderer struct {
	r      *lipgloss.Renderer
	styles map[cellStyle]lipgloss.Style
}

// NewScreenRenderer creates a renderer bound to r. A nil r uses the default
// renderer of the local terminal.
func NewScreenRenderer(r *lipgloss.Renderer) *ScreenRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &ScreenRenderer{r: r, styles: make(map[cellStyle]lipgloss.Style)}
}

func (sr *ScreenRenderer) style(key cellStyle) lipgloss.Style {
	if st, ok := sr.styles[key]; ok {
		return st
	}
	st := sr.r.NewStyle()
	if !key.fg.IsZero() {
		st = st.Foreground(lipgloss.Color(key.fg.Hex()))
	}
	if !key.bg.IsZero() {
		st = st.Background(lipgloss.Color(key.bg.Hex()))
	}
	sr.styles[key] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (sr *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			key := cellStyle{fg: first.Fg, bg: first.Bg}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !cell.Fg.Equal(key.fg) || !cell.Bg.Equal(key.bg) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if key.fg.IsZero() && key.bg.IsZero() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(sr.style(key).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders s with the local terminal's color profile.
func RenderScreen(s *core.Screen) string {
	return NewScreenRenderer(nil).Render(s)
}
