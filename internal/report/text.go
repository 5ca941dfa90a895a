package report

import (
	"fmt"
	"io"

	"github.com/bayneri/attendance/internal/projector"
)

// Render prints a single projection the way the dashboard lays it out.
func Render(w io.Writer, query projector.Query, result projector.Result) {
	target := formatTarget(query.Target)
	fmt.Fprintf(w, "Current attendance: %s (%d of %d)\n", formatPercent(result.CurrentPercentage), query.Attended, query.Total)
	fmt.Fprintf(w, "Target: %s\n", target)
	if result.MeetsTarget {
		fmt.Fprintf(w, "You are above your target of %s!\n", target)
	} else {
		fmt.Fprintf(w, "You are below your target of %s.\n", target)
	}
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, "Predictions:")
	if result.ClassesNeeded != nil {
		fmt.Fprintf(w, "- Classes needed: %d (attend consecutively to reach %s)\n", *result.ClassesNeeded, target)
	}
	if result.ClassesCanMiss != nil {
		fmt.Fprintf(w, "- Classes you can miss: %d (still maintain %s)\n", *result.ClassesCanMiss, target)
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Projection:")
	for _, scenario := range result.Projection {
		fmt.Fprintf(w, "- %s: %s\n", scenario.Label, formatPercent(scenario.Percentage))
	}
}
