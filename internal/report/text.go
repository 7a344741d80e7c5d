package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/san-kum/datastat/internal/viz"
)

func WriteText(w io.Writer, s *Summary) error {
	fmt.Fprintln(w, viz.Title.Render(fmt.Sprintf("summary of %d values", s.Count)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, m := range s.Metrics {
		fmt.Fprintf(tw, "%s\t%s\n", viz.MetricLabel.Render(m.Name), viz.FormatValue(m.Value))
	}
	fmt.Fprintf(tw, "%s\t%s\n", viz.MetricLabel.Render("mode"), FormatList(s.Mode))
	for _, p := range s.Percentiles {
		fmt.Fprintf(tw, "%s\t%s\n", viz.MetricLabel.Render("p"+viz.FormatFloat(p.P)), viz.FormatValue(p.Value))
	}
	if s.Correlation != nil {
		fmt.Fprintf(tw, "%s\t%s\n", viz.MetricLabel.Render("correlation"), viz.FormatValue(*s.Correlation))
	}
	return tw.Flush()
}

// FormatList renders values as a comma separated list, "[]" when empty.
func FormatList(values []float64) string {
	if len(values) == 0 {
		return "[]"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = viz.FormatFloat(v)
	}
	return strings.Join(parts, ", ")
}
