package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris-cube/internal/core"
)

var (
	styleMu    sync.Mutex
	styleCache = make(map[core.Style]lipgloss.Style)
)

// styleFor maps a cell style to a truecolor lipgloss style.
// Default colors are left unset so the terminal's own colors show through.
func styleFor(st core.Style) lipgloss.Style {
	styleMu.Lock()
	defer styleMu.Unlock()

	if s, ok := styleCache[st]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	if hex := st.Fg.Hex(); hex != "" {
		s = s.Foreground(lipgloss.Color(hex))
	}
	if hex := st.Bg.Hex(); hex != "" {
		s = s.Background(lipgloss.Color(hex))
	}
	if st.Bold {
		s = s.Bold(true)
	}
	styleCache[st] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < s.Width() {
			startStyle := s.GetCell(x, y).Style

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != startStyle {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startStyle).Render(run.String()))
		}
	}
	return sb.String()
}
