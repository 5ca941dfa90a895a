package evaluate

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/bayneri/attendance/internal/plan"
)

var fixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func termPlan(courses ...plan.Course) plan.Plan {
	return plan.Plan{
		APIVersion: plan.APIVersionV1,
		Kind:       plan.KindAttendancePlan,
		Metadata:   plan.Metadata{Name: "Spring Term", Student: "Ada"},
		Courses:    courses,
	}
}

func TestRunMixedStatuses(t *testing.T) {
	p := termPlan(
		plan.Course{Name: "algebra", Attended: 60, Total: 100},
		plan.Course{Name: "physics", Attended: 20, Total: 20, Target: 80, Upcoming: 5},
	)
	summary, outDir, err := Run(p, Options{Now: fixedNow, Defaults: plan.Defaults{Target: 75, Upcoming: 10}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outDir != filepath.Join("out", "attendance", "20260302-093000-spring-term") {
		t.Fatalf("unexpected out dir %q", outDir)
	}
	if summary.Status != StatusBelow {
		t.Fatalf("expected status below, got %q", summary.Status)
	}
	if len(summary.Courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(summary.Courses))
	}

	algebra := summary.Courses[0]
	if algebra.Status != StatusBelow || algebra.Result == nil || *algebra.Result.ClassesNeeded != 60 {
		t.Fatalf("unexpected algebra result: %+v", algebra)
	}
	if algebra.Query.Target != 75 || algebra.Query.Upcoming != 10 {
		t.Fatalf("expected defaults applied, got %+v", algebra.Query)
	}

	physics := summary.Courses[1]
	// 20/25 = 80% still holds, 20/26 does not.
	if physics.Status != StatusOK || *physics.Result.ClassesCanMiss != 5 {
		t.Fatalf("unexpected physics result: %+v", physics)
	}
}

func TestRunPartial(t *testing.T) {
	p := termPlan(
		plan.Course{Name: "algebra", Attended: 90, Total: 100, Target: 75, Upcoming: 10},
		plan.Course{Name: "chemistry", Attended: 9, Total: 10, Target: 100, Upcoming: 10},
	)
	summary, _, err := Run(p, Options{Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Status != StatusPartial {
		t.Fatalf("expected status partial, got %q", summary.Status)
	}
	if len(summary.Errors) != 1 || !strings.HasPrefix(summary.Errors[0], "chemistry: unreachable target") {
		t.Fatalf("unexpected errors: %v", summary.Errors)
	}
	if summary.Courses[1].Result != nil {
		t.Fatalf("expected no result for failed course")
	}
}

func TestRunStrict(t *testing.T) {
	p := termPlan(plan.Course{Name: "algebra", Attended: 12, Total: 10, Target: 75, Upcoming: 2})

	lenient, _, err := Run(p, Options{Now: fixedNow})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lenient.Status != StatusOK {
		t.Fatalf("expected lenient status ok, got %q", lenient.Status)
	}

	strict, _, err := Run(p, Options{Now: fixedNow, Strict: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strict.Status != StatusPartial {
		t.Fatalf("expected strict status partial, got %q", strict.Status)
	}
	if !strings.Contains(strict.Courses[0].Error, ErrAttendedAboveTotal.Error()) {
		t.Fatalf("unexpected error %q", strict.Courses[0].Error)
	}
}

func TestRunOnly(t *testing.T) {
	p := termPlan(
		plan.Course{Name: "algebra", Attended: 60, Total: 100},
		plan.Course{Name: "physics", Attended: 20, Total: 20},
	)
	defaults := plan.Defaults{Target: 75, Upcoming: 10}

	summary, _, err := Run(p, Options{Now: fixedNow, Defaults: defaults, Only: regexp.MustCompile("^phys")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Courses) != 1 || summary.Courses[0].Name != "physics" {
		t.Fatalf("unexpected courses: %+v", summary.Courses)
	}

	_, _, err = Run(p, Options{Now: fixedNow, Defaults: defaults, Only: regexp.MustCompile("history")})
	if err == nil {
		t.Fatalf("expected error when nothing matches")
	}
}

func TestRunInvalidPlan(t *testing.T) {
	_, _, err := Run(termPlan(), Options{Now: fixedNow})
	if err == nil || !strings.Contains(err.Error(), "at least one course") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRunOutDirOverride(t *testing.T) {
	p := termPlan(plan.Course{Name: "algebra", Attended: 60, Total: 100, Target: 75, Upcoming: 10})
	_, outDir, err := Run(p, Options{Now: fixedNow, OutDir: "reports"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outDir != "reports" {
		t.Fatalf("expected reports, got %q", outDir)
	}
}

func TestEvaluateCourseMissingDefaults(t *testing.T) {
	item := evaluateCourse(plan.Course{Name: "algebra", Attended: 1, Total: 2}, false)
	if item.Status != StatusError {
		t.Fatalf("expected error status, got %q", item.Status)
	}
	if !strings.Contains(item.Error, "invalid input") {
		t.Fatalf("unexpected error %q", item.Error)
	}
}

func TestSanitizeSegment(t *testing.T) {
	cases := map[string]string{
		"Spring Term": "spring-term",
		"term/2026.1": "term2026-1",
		"":            "plan",
		"??":          "plan",
		"fall_2026-a": "fall_2026-a",
	}
	for input, want := range cases {
		if got := sanitizeSegment(input); got != want {
			t.Fatalf("sanitizeSegment(%q)=%q, want %q", input, got, want)
		}
	}
}
