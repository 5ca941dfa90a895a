package evaluate

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/bayneri/attendance/internal/logger"
	"github.com/bayneri/attendance/internal/plan"
	"github.com/bayneri/attendance/internal/projector"
)

const (
	StatusOK      = "ok"
	StatusBelow   = "below"
	StatusPartial = "partial"
	StatusError   = "error"
)

type Options struct {
	OutDir   string
	Only     *regexp.Regexp
	Strict   bool
	Defaults plan.Defaults
	Now      time.Time
	Logger   *slog.Logger
}

// ErrAttendedAboveTotal is returned in strict mode for courses with more
// attended classes than held classes.
var ErrAttendedAboveTotal = errors.New("attended exceeds total")

func Run(p plan.Plan, opts Options) (Summary, string, error) {
	if opts.Now.IsZero() {
		opts.Now = time.Now().UTC()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if err := p.Validate(); err != nil {
		return Summary{}, "", err
	}
	p = p.WithDefaults(opts.Defaults)

	outDir := opts.OutDir
	if outDir == "" {
		stamp := opts.Now.UTC().Format("20060102-150405")
		outDir = filepath.Join("out", "attendance", fmt.Sprintf("%s-%s", stamp, sanitizeSegment(p.Metadata.Name)))
	}

	summary := Summary{
		SchemaVersion: SchemaVersion,
		Name:          p.Metadata.Name,
		Student:       p.Metadata.Student,
		Term:          p.Metadata.Term,
		GeneratedAt:   opts.Now.UTC(),
		Status:        StatusOK,
		Errors:        []string{},
	}

	for _, course := range p.Courses {
		if opts.Only != nil && !opts.Only.MatchString(course.Name) {
			opts.Logger.Debug("skipping course", "course", course.Name)
			continue
		}
		item := evaluateCourse(course, opts.Strict)
		if item.Status == StatusError {
			opts.Logger.Warn("course could not be projected", "course", course.Name, "error", item.Error)
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", course.Name, item.Error))
		} else {
			opts.Logger.Debug("projected course", "course", course.Name, "status", item.Status, "current", item.Result.CurrentPercentage)
		}
		summary.Courses = append(summary.Courses, item)
	}

	if len(summary.Courses) == 0 {
		return Summary{}, outDir, errors.New("no courses matched")
	}
	summary.Status = overallStatus(summary.Courses)
	return summary, outDir, nil
}

func evaluateCourse(course plan.Course, strict bool) CourseResult {
	query := course.Query()
	item := CourseResult{Name: course.Name, Query: query}
	if strict && query.Attended > query.Total {
		item.Status = StatusError
		item.Error = fmt.Errorf("%w: %d of %d", ErrAttendedAboveTotal, query.Attended, query.Total).Error()
		return item
	}
	result, err := projector.Project(query)
	if err != nil {
		item.Status = StatusError
		item.Error = err.Error()
		return item
	}
	item.Result = &result
	item.Status = StatusOK
	if !result.MeetsTarget {
		item.Status = StatusBelow
	}
	return item
}

func overallStatus(courses []CourseResult) string {
	status := StatusOK
	for _, course := range courses {
		switch course.Status {
		case StatusError:
			return StatusPartial
		case StatusBelow:
			status = StatusBelow
		}
	}
	return status
}

func sanitizeSegment(input string) string {
	var out []rune
	for _, r := range strings.ToLower(input) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			out = append(out, r)
		} else if r == '.' || r == ' ' {
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "plan"
	}
	return string(out)
}
