package report

import (
	"fmt"
	"strings"
)

const svgStroke = "#00ccff"

// SVG renders values against their index as an SVG line chart, with a
// dashed line at mark when it is present in the values' range.
func SVG(values []float64, width, height int, mark *float64) (string, error) {
	if len(values) == 0 {
		return "", ErrNoData
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	span := hi - lo
	if span == 0 {
		span = 1
	}
	lo -= span * 0.1
	hi += span * 0.1
	span = hi - lo

	toY := func(v float64) float64 {
		return float64(height) - (v-lo)/span*float64(height)
	}
	step := float64(width)
	if len(values) > 1 {
		step = float64(width) / float64(len(values)-1)
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, svgStroke))

	for i, v := range values {
		x := float64(i) * step
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, toY(v)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, toY(v)))
		}
	}
	sb.WriteString("\"/>\n")

	if mark != nil {
		y := toY(*mark)
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#ffcc00" stroke-dasharray="4 4"/>
`, y, width, y))
	}

	sb.WriteString("</svg>\n")
	return sb.String(), nil
}
