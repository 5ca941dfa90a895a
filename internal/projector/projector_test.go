package projector

import (
	"errors"
	"reflect"
	"testing"
)

func TestProjectAtTarget(t *testing.T) {
	result, err := Project(Query{Attended: 75, Total: 100, Target: 75, Upcoming: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentPercentage != 75 {
		t.Fatalf("expected 75%%, got %v", result.CurrentPercentage)
	}
	if !result.MeetsTarget {
		t.Fatalf("expected target to be met")
	}
	if result.ClassesNeeded != nil {
		t.Fatalf("expected no classesNeeded, got %d", *result.ClassesNeeded)
	}
	if result.ClassesCanMiss == nil || *result.ClassesCanMiss != 0 {
		t.Fatalf("expected classesCanMiss 0, got %v", result.ClassesCanMiss)
	}
}

func TestProjectBelowTarget(t *testing.T) {
	result, err := Project(Query{Attended: 60, Total: 100, Target: 75, Upcoming: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentPercentage != 60 {
		t.Fatalf("expected 60%%, got %v", result.CurrentPercentage)
	}
	if result.MeetsTarget {
		t.Fatalf("expected target to be missed")
	}
	if result.ClassesCanMiss != nil {
		t.Fatalf("expected no classesCanMiss, got %d", *result.ClassesCanMiss)
	}
	if result.ClassesNeeded == nil || *result.ClassesNeeded != 60 {
		t.Fatalf("expected classesNeeded 60, got %v", result.ClassesNeeded)
	}
}

func TestProjectFullAttendance(t *testing.T) {
	result, err := Project(Query{Attended: 20, Total: 20, Target: 75, Upcoming: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentPercentage != 100 || !result.MeetsTarget {
		t.Fatalf("expected 100%% meeting target, got %v", result.CurrentPercentage)
	}
	if result.ClassesCanMiss == nil || *result.ClassesCanMiss != 6 {
		t.Fatalf("expected classesCanMiss 6, got %v", result.ClassesCanMiss)
	}
}

func TestProjectProjection(t *testing.T) {
	result, err := Project(Query{Attended: 15, Total: 20, Target: 80, Upcoming: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Scenario{
		{Label: "Current %", Percentage: 75},
		{Label: "Target %", Percentage: 80},
		{Label: "5 Attend All", Percentage: 80},
		{Label: "5 Miss All", Percentage: 60},
	}
	if !reflect.DeepEqual(result.Projection, want) {
		t.Fatalf("projection=%v, want %v", result.Projection, want)
	}
}

func TestProjectIdempotent(t *testing.T) {
	q := Query{Attended: 33, Total: 47, Target: 72, Upcoming: 12}
	first, err := Project(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Project(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}

func TestProjectInvalidInput(t *testing.T) {
	cases := []struct {
		name  string
		query Query
	}{
		{"zero-total", Query{Attended: 5, Total: 0, Target: 75, Upcoming: 10}},
		{"negative-attended", Query{Attended: -1, Total: 10, Target: 75, Upcoming: 10}},
		{"target-low", Query{Attended: 5, Total: 10, Target: 0, Upcoming: 10}},
		{"target-high", Query{Attended: 5, Total: 10, Target: 101, Upcoming: 10}},
		{"zero-upcoming", Query{Attended: 5, Total: 10, Target: 75, Upcoming: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Project(tc.query)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestProjectUnreachable(t *testing.T) {
	_, err := Project(Query{Attended: 9, Total: 10, Target: 100, Upcoming: 3})
	if !errors.Is(err, ErrUnreachableTarget) {
		t.Fatalf("expected ErrUnreachableTarget, got %v", err)
	}
}

func TestProjectAttendedAboveTotal(t *testing.T) {
	result, err := Project(Query{Attended: 12, Total: 10, Target: 75, Upcoming: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CurrentPercentage != 120 {
		t.Fatalf("expected 120%%, got %v", result.CurrentPercentage)
	}
}
