// Package projector turns attendance counts into a percentage and projects
// the classes needed to reach, or allowed to miss while holding, a target.
package projector

import (
	"fmt"
	"strings"
)

const (
	MinTarget = 1
	MaxTarget = 100
)

type Query struct {
	Attended int     `json:"attended" yaml:"attended"`
	Total    int     `json:"total" yaml:"total"`
	Target   float64 `json:"target" yaml:"target"`
	Upcoming int     `json:"upcoming" yaml:"upcoming"`
}

// Result holds exactly one of ClassesNeeded and ClassesCanMiss, selected by MeetsTarget.
type Result struct {
	CurrentPercentage float64    `json:"currentPercentage"`
	MeetsTarget       bool       `json:"meetsTarget"`
	ClassesNeeded     *int       `json:"classesNeeded"`
	ClassesCanMiss    *int       `json:"classesCanMiss"`
	Projection        []Scenario `json:"projection"`
}

func (q Query) Validate() error {
	var errs []string
	if q.Attended < 0 {
		errs = append(errs, fmt.Sprintf("attended must not be negative, got %d", q.Attended))
	}
	if q.Total < 1 {
		errs = append(errs, fmt.Sprintf("total must be at least 1, got %d", q.Total))
	}
	if q.Target < MinTarget || q.Target > MaxTarget {
		errs = append(errs, fmt.Sprintf("target must be between %d and %d, got %v", MinTarget, MaxTarget, q.Target))
	}
	if q.Upcoming < 1 {
		errs = append(errs, fmt.Sprintf("upcoming must be at least 1, got %d", q.Upcoming))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(errs, "; "))
	}
	return nil
}

// Project validates q and computes its Result. A failed query yields no Result.
func Project(q Query) (Result, error) {
	if err := q.Validate(); err != nil {
		return Result{}, err
	}

	current, err := ComputeCurrent(q.Attended, q.Total)
	if err != nil {
		return Result{}, err
	}
	result := Result{
		CurrentPercentage: current,
		MeetsTarget:       current >= q.Target,
	}

	if result.MeetsTarget {
		canMiss, err := ClassesCanMiss(q.Attended, q.Total, q.Target)
		if err != nil {
			return Result{}, err
		}
		result.ClassesCanMiss = &canMiss
	} else {
		needed, err := ClassesNeeded(q.Attended, q.Total, q.Target)
		if err != nil {
			return Result{}, err
		}
		result.ClassesNeeded = &needed
	}

	result.Projection, err = BuildProjection(q.Attended, q.Total, q.Target, q.Upcoming)
	if err != nil {
		return Result{}, err
	}
	return result, nil
}
