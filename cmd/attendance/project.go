package main

import (
	"fmt"
	"strings"

	"github.com/bayneri/attendance/internal/evaluate"
	"github.com/bayneri/attendance/internal/projector"
	"github.com/bayneri/attendance/internal/report"
)

func (a app) runProject(args []string) error {
	fs := a.flagSet("project")
	query := projector.Query{Target: a.cfg.Target, Upcoming: a.cfg.Upcoming}
	fs.IntVar(&query.Attended, "attended", 0, "classes attended so far")
	fs.IntVar(&query.Total, "total", 0, "classes held so far")
	fs.Float64Var(&query.Target, "target", query.Target, "target attendance percentage")
	fs.IntVar(&query.Upcoming, "upcoming", query.Upcoming, "upcoming classes to project over")
	format := fs.String("format", "text", "output format: text or json")
	strict := fs.Bool("strict", a.cfg.Strict, "reject more attended classes than held classes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *strict && query.Attended > query.Total {
		return fmt.Errorf("%w: %d of %d", evaluate.ErrAttendedAboveTotal, query.Attended, query.Total)
	}
	result, err := projector.Project(query)
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimSpace(*format)) {
	case "", "text":
		report.Render(a.stdout, query, result)
		return nil
	case "json":
		return report.EncodeResultJSON(a.stdout, query, result)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}
