package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bayneri/attendance/internal/evaluate"
)

type Options struct {
	Explain  bool
	Timezone *time.Location
}

func WriteMarkdownSummary(path string, summary evaluate.Summary, opts Options) error {
	if opts.Timezone == nil {
		opts.Timezone = time.UTC
	}
	var b strings.Builder

	fmt.Fprintf(&b, "# Attendance projection\n\n")
	fmt.Fprintf(&b, "- Plan: %s\n", summary.Name)
	if summary.Student != "" {
		fmt.Fprintf(&b, "- Student: %s\n", summary.Student)
	}
	if summary.Term != "" {
		fmt.Fprintf(&b, "- Term: %s\n", summary.Term)
	}
	fmt.Fprintf(&b, "- Generated: %s\n", summary.GeneratedAt.In(opts.Timezone).Format(time.RFC3339))
	fmt.Fprintf(&b, "- Status: %s\n\n", summary.Status)

	fmt.Fprintf(&b, "| Course | Attended | Total | Target | Current | Status | Needed | Can miss | Attend all | Miss all |\n")
	fmt.Fprintf(&b, "| --- | --- | --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, course := range summary.Courses {
		current, needed, canMiss := "-", "-", "-"
		if course.Result != nil {
			current = formatPercent(course.Result.CurrentPercentage)
			needed = formatCount(course.Result.ClassesNeeded)
			canMiss = formatCount(course.Result.ClassesCanMiss)
		}
		fmt.Fprintf(&b, "| %s | %d | %d | %s | %s | %s | %s | %s | %s | %s |\n",
			course.Name, course.Query.Attended, course.Query.Total, formatTarget(course.Query.Target),
			current, course.Status, needed, canMiss,
			scenarioPercent(course.Result, attendAllIndex), scenarioPercent(course.Result, missAllIndex))
	}

	if len(summary.Errors) > 0 {
		fmt.Fprintf(&b, "\n## Notes & assumptions\n")
		for _, err := range summary.Errors {
			fmt.Fprintf(&b, "- %s\n", err)
		}
	}

	if opts.Explain {
		fmt.Fprintf(&b, "\n## How computed\n\n")
		fmt.Fprintf(&b, "- current = attended / total * 100\n")
		fmt.Fprintf(&b, "- needed = smallest n with (attended + n) / (total + n) * 100 >= target\n")
		fmt.Fprintf(&b, "- can miss = largest m with attended / (total + m) * 100 >= target\n")
		fmt.Fprintf(&b, "- attend all = (attended + upcoming) / (total + upcoming) * 100\n")
		fmt.Fprintf(&b, "- miss all = attended / (total + upcoming) * 100\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}
