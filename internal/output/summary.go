package output

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/daryltucker/sysbench/internal/model"
)

// WriteSummary prints the report as an aligned table, one row per subsystem.
// Failed subsystems are flagged in the status column, in red when colorize is set.
func WriteSummary(w io.Writer, rep model.Report, colorize bool) error {
	ok := color.New(color.FgGreen)
	bad := color.New(color.FgRed, color.Bold)
	for _, c := range []*color.Color{ok, bad} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	fmt.Fprintf(w, "Run %s on %s (%s/%s, %d CPUs, %s), %s\n\n",
		rep.RunID, rep.Host, rep.OS, rep.Arch, rep.NumCPU, rep.GoVersion, rep.Duration.Round(time.Millisecond))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SUBSYSTEM\tSCORE\tELAPSED\tSTATUS")
	for _, e := range rep.Result {
		elapsed := "-"
		if e.Elapsed > 0 {
			elapsed = e.Elapsed.Round(time.Microsecond).String()
		}
		status := ok.Sprint("ok")
		if e.Failed() {
			status = bad.Sprintf("FAILED: %v", e.Err)
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%s\n", e.Subsystem, e.Score, elapsed, status)
	}
	return tw.Flush()
}
