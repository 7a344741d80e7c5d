package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/datastat/internal/config"
	"github.com/san-kum/datastat/internal/dataset"
	"github.com/san-kum/datastat/internal/input"
	"github.com/san-kum/datastat/internal/metrics"
	"github.com/san-kum/datastat/internal/report"
	"github.com/san-kum/datastat/internal/viz"
)

type model struct {
	data     *dataset.Analyzer
	registry *metrics.Registry
	factor   float64
	plot     config.PlotConfig

	editBuf string
	status  string
	err     error
	sorted  bool

	width  int
	height int
}

// NewInteractiveApp returns an editor over a, using cfg for the outlier
// factor and plot size.
func NewInteractiveApp(a *dataset.Analyzer, cfg *config.Config) tea.Model {
	return newModel(a, cfg)
}

func newModel(a *dataset.Analyzer, cfg *config.Config) model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return model{
		data:     a,
		registry: metrics.NewRegistry(),
		factor:   cfg.OutlierFactor,
		plot:     cfg.Plot,
		status:   "type numbers and press enter",
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		m.submit()
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case "ctrl+x":
		m.data.ClearData()
		m.setStatus("cleared")
	case "ctrl+o":
		removed := m.data.RemoveOutliers(m.factor)
		m.setStatus(fmt.Sprintf("removed %d outliers (factor %s)", removed, viz.FormatFloat(m.factor)))
	case "ctrl+s":
		m.sorted = !m.sorted
	default:
		for _, c := range msg.Runes {
			if isNumberRune(c) {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m *model) submit() {
	values, err := input.Read(strings.NewReader(m.editBuf))
	if err != nil {
		m.err = err
		return
	}
	m.data.AddData(values...)
	m.editBuf = ""
	m.setStatus(fmt.Sprintf("added %d values", len(values)))
}

func (m *model) setStatus(s string) {
	m.status = s
	m.err = nil
}

func isNumberRune(c rune) bool {
	return (c >= '0' && c <= '9') || strings.ContainsRune(".-+eE,; ", c)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(viz.Title.Render("datastat"))
	b.WriteString(viz.Subtle.Render(fmt.Sprintf("  %d values", m.data.Len())))
	b.WriteString("\n\n")

	b.WriteString("> " + m.editBuf + "█\n")
	if m.err != nil {
		b.WriteString(viz.StatusError.Render(m.err.Error()))
	} else {
		b.WriteString(viz.StatusOK.Render(m.status))
	}
	b.WriteString("\n\n")

	var rows []string
	for _, r := range m.registry.Evaluate(m.data) {
		rows = append(rows, fmt.Sprintf("%-9s %s", viz.MetricLabel.Render(r.Name), viz.RenderValue(r.Value)))
	}
	rows = append(rows, fmt.Sprintf("%-9s %s", viz.MetricLabel.Render("mode"), viz.MetricValue.Render(report.FormatList(m.data.Mode()))))
	b.WriteString(viz.Panel.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	values := m.data.Data()
	caption := "values in insertion order"
	if m.sorted {
		values = m.data.SortData()
		caption = "values sorted"
	}
	if len(values) >= 2 {
		if graph, err := report.Plot(values, report.PlotOptions{
			Height:  m.plot.Height,
			Width:   m.plot.Width,
			Caption: caption,
		}); err == nil {
			b.WriteString("\n" + graph + "\n")
		}
	}

	b.WriteString("\n" + viz.Sparkline(m.data.Normalize(), m.plot.Width) + "\n")
	b.WriteString(viz.KeyHint.Render("enter add · ctrl+o outliers · ctrl+x clear · ctrl+s sort · esc quit"))
	return b.String()
}

// RunInteractive starts the editor on the alternate screen.
func RunInteractive(a *dataset.Analyzer, cfg *config.Config) error {
	p := tea.NewProgram(NewInteractiveApp(a, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
