package plan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bayneri/attendance/internal/projector"
)

const (
	APIVersionV1       = "attendance.dev/v1"
	KindAttendancePlan = "AttendancePlan"
)

type Plan struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Defaults   Defaults `yaml:"defaults"`
	Courses    []Course `yaml:"courses"`
}

type Metadata struct {
	Name    string `yaml:"name"`
	Student string `yaml:"student"`
	Term    string `yaml:"term"`
}

// Defaults fill course fields left at zero.
type Defaults struct {
	Target   float64 `yaml:"target"`
	Upcoming int     `yaml:"upcoming"`
}

type Course struct {
	Name     string  `yaml:"name"`
	Attended int     `yaml:"attended"`
	Total    int     `yaml:"total"`
	Target   float64 `yaml:"target"`
	Upcoming int     `yaml:"upcoming"`
}

func (c Course) Query() projector.Query {
	return projector.Query{
		Attended: c.Attended,
		Total:    c.Total,
		Target:   c.Target,
		Upcoming: c.Upcoming,
	}
}

// WithDefaults returns a copy whose empty defaults are taken from fallback
// and whose courses inherit the resulting defaults.
func (p Plan) WithDefaults(fallback Defaults) Plan {
	out := p
	if out.Defaults.Target == 0 {
		out.Defaults.Target = fallback.Target
	}
	if out.Defaults.Upcoming == 0 {
		out.Defaults.Upcoming = fallback.Upcoming
	}
	out.Courses = make([]Course, len(p.Courses))
	for i, course := range p.Courses {
		if course.Target == 0 {
			course.Target = out.Defaults.Target
		}
		if course.Upcoming == 0 {
			course.Upcoming = out.Defaults.Upcoming
		}
		out.Courses[i] = course
	}
	return out
}

func (p Plan) Validate() error {
	var errs []string
	if p.APIVersion != APIVersionV1 {
		errs = append(errs, fmt.Sprintf("apiVersion must be %q", APIVersionV1))
	}
	if p.Kind != KindAttendancePlan {
		errs = append(errs, fmt.Sprintf("kind must be %q", KindAttendancePlan))
	}
	if strings.TrimSpace(p.Metadata.Name) == "" {
		errs = append(errs, "metadata.name is required")
	}
	if p.Defaults.Target != 0 && !validTarget(p.Defaults.Target) {
		errs = append(errs, fmt.Sprintf("defaults.target must be between %d and %d", projector.MinTarget, projector.MaxTarget))
	}
	if p.Defaults.Upcoming < 0 {
		errs = append(errs, "defaults.upcoming must not be negative")
	}
	if len(p.Courses) == 0 {
		errs = append(errs, "at least one course is required")
	}

	seen := map[string]bool{}
	for i, course := range p.Courses {
		prefix := fmt.Sprintf("courses[%d]", i)
		name := strings.TrimSpace(course.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("%s.name is required", prefix))
		} else if seen[name] {
			errs = append(errs, fmt.Sprintf("%s.name %q is duplicated", prefix, name))
		}
		seen[name] = true
		for _, err := range validateCourse(course) {
			errs = append(errs, fmt.Sprintf("%s.%s", prefix, err))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// validateCourse checks ranges on fields that are set; zero target and
// upcoming stay legal until defaults are applied.
func validateCourse(course Course) []string {
	var errs []string
	if course.Attended < 0 {
		errs = append(errs, "attended must not be negative")
	}
	if course.Total < 1 {
		errs = append(errs, "total must be at least 1")
	}
	if course.Target != 0 && !validTarget(course.Target) {
		errs = append(errs, fmt.Sprintf("target must be between %d and %d", projector.MinTarget, projector.MaxTarget))
	}
	if course.Upcoming < 0 {
		errs = append(errs, "upcoming must not be negative")
	}
	return errs
}

func validTarget(target float64) bool {
	return target >= projector.MinTarget && target <= projector.MaxTarget
}
