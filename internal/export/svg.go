package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/life1d/internal/life"
)

// SpaceTimeSVG draws a run as a space-time diagram: one row of squares per
// generation, generation 0 at the top. Each cell is scale pixels wide.
func SpaceTimeSVG(rows [][]life.Cell, scale int, alive, dead string) string {
	if len(rows) == 0 || scale <= 0 {
		return ""
	}

	width := len(rows[0]) * scale
	height := len(rows) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, dead, alive))

	for y, row := range rows {
		for x, c := range row {
			if c != life.Alive {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d"/>
`, x*scale, y*scale, scale, scale))
		}
	}

	sb.WriteString("</g>\n</svg>\n")
	return sb.String()
}

// PopulationSVG draws the population series as a polyline scaled to the
// board length.
func PopulationSVG(populations []int, boardLen, width, height int, stroke string) string {
	if len(populations) < 2 || width <= 0 || height <= 0 {
		return ""
	}
	top := boardLen
	if top <= 0 {
		top = 1
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, stroke))

	step := float64(width) / float64(len(populations)-1)
	for i, p := range populations {
		x := float64(i) * step
		y := float64(height) - float64(p)/float64(top)*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString("\"/>\n</svg>\n")
	return sb.String()
}
