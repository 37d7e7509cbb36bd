package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/life1d/internal/life"
)

const (
	aliveGlyph = "█"
	deadGlyph  = "·"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Width(12)
	helpStyle  = lipgloss.NewStyle().Italic(true).MarginTop(1)
)

// RenderBoard draws a generation as one row of coloured glyphs.
func RenderBoard(cells []life.Cell, th Theme) string {
	alive := lipgloss.NewStyle().Foreground(th.Alive)
	dead := lipgloss.NewStyle().Foreground(th.Dead)

	var sb strings.Builder
	for _, c := range cells {
		if c == life.Alive {
			sb.WriteString(alive.Render(aliveGlyph))
		} else {
			sb.WriteString(dead.Render(deadGlyph))
		}
	}
	return sb.String()
}

// RenderHistory stacks generations top to bottom, oldest first.
func RenderHistory(history [][]life.Cell, th Theme) string {
	rows := make([]string, len(history))
	for i, cells := range history {
		rows[i] = RenderBoard(cells, th)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SparklineChart renders a mini sparkline from values
func SparklineChart(values []float64, width int, th Theme) string {
	if len(values) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	// Keep the most recent samples when there are more than fit.
	if len(values) > width {
		values = values[len(values)-width:]
	}

	style := lipgloss.NewStyle().Foreground(th.Accent)
	var sb strings.Builder
	for _, v := range values {
		idx := int((v - lo) / rng * float64(len(chars)-1))
		idx = min(max(idx, 0), len(chars)-1)
		sb.WriteRune(chars[idx])
	}
	return style.Render(sb.String())
}

func statLine(label, value string, th Theme) string {
	return labelStyle.Foreground(th.Muted).Render(label) +
		lipgloss.NewStyle().Foreground(th.Text).Render(value)
}
