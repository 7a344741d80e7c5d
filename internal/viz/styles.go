package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/datastat/internal/dataset"
)

var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	// Absent results.
	NullValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Italic(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688")).
		Italic(true)

	StatusOK = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusError = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	SparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	SparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	SparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// FormatValue renders a result with 6 significant digits, or "null".
func FormatValue(v dataset.Value) string {
	f, ok := v.Get()
	if !ok {
		return "null"
	}
	return FormatFloat(f)
}

func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

// RenderValue is FormatValue with the value or null style applied.
func RenderValue(v dataset.Value) string {
	if !v.Valid() {
		return NullValue.Render("null")
	}
	return MetricValue.Render(FormatValue(v))
}

// Sparkline renders values, already scaled to [0, 1], as block glyphs
// sampled down to width.
func Sparkline(normalized []float64, width int) string {
	if len(normalized) == 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	step := len(normalized) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(normalized); i++ {
		norm := normalized[i*step]
		idx := int(norm * float64(len(chars)-1))
		idx = min(max(idx, 0), len(chars)-1)

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			b.WriteString(SparkHigh.Render(c))
		case norm > 0.3:
			b.WriteString(SparkMid.Render(c))
		default:
			b.WriteString(SparkLow.Render(c))
		}
	}
	return b.String()
}

func Separator(width int) string {
	n := max(width-3, 0)
	left := strings.Repeat("─", n/2)
	right := strings.Repeat("─", n-n/2)
	return Subtle.Render(left + " ◆ " + right)
}
