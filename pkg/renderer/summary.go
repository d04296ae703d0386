package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// WriteSummary renders a table of per-iteration statistics with a totals footer
func WriteSummary(w io.Writer, stats []IterationStats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Iteration", "Time", "Rays", "Mray/s", "SPP", "Luminance", "Output"})

	var totalTime time.Duration
	var totalRays uint64
	for _, s := range stats {
		totalTime += s.Duration
		totalRays += s.Rays
		table.Append([]string{
			fmt.Sprintf("%d", s.Iteration),
			s.Duration.Round(time.Millisecond).String(),
			fmt.Sprintf("%d", s.Rays),
			fmt.Sprintf("%.2f", s.MRaysPerSecond()),
			fmt.Sprintf("%d", s.SamplesPerPixel),
			fmt.Sprintf("%.4f", s.Luminance),
			s.Output,
		})
	}

	total := IterationStats{Duration: totalTime, Rays: totalRays}
	table.SetFooter([]string{
		"TOTAL",
		totalTime.Round(time.Millisecond).String(),
		fmt.Sprintf("%d", totalRays),
		fmt.Sprintf("%.2f", total.MRaysPerSecond()),
		"", "", "",
	})
	table.Render()
}
