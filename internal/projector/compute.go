package projector

import "fmt"

// MaxIterations caps the step-by-step searches in ClassesNeeded and ClassesCanMiss.
const MaxIterations = 10_000_000

func percent(attended, total int) float64 {
	return float64(attended) / float64(total) * 100
}

// ComputeCurrent returns attended/total as a percentage.
func ComputeCurrent(attended, total int) (float64, error) {
	if total <= 0 {
		return 0, fmt.Errorf("%w: total must be positive, got %d", ErrInvalidInput, total)
	}
	return percent(attended, total), nil
}

// ClassesNeeded returns how many consecutive classes must be attended before
// the percentage reaches target. It returns 0 when already at or above target.
func ClassesNeeded(attended, total int, target float64) (int, error) {
	if err := checkRatio(attended, total, target); err != nil {
		return 0, err
	}
	if percent(attended, total) >= target {
		return 0, nil
	}
	// Attending more never lifts the ratio to 100% unless nothing was missed.
	if target >= 100 {
		return 0, fmt.Errorf("%w: %.2f%% cannot be reached after missing %d classes", ErrUnreachableTarget, target, total-attended)
	}

	needed := 0
	futureAttended, futureTotal := attended, total
	for percent(futureAttended, futureTotal) < target {
		if needed >= MaxIterations {
			return 0, fmt.Errorf("%w: no result within %d classes", ErrUnreachableTarget, MaxIterations)
		}
		needed++
		futureAttended++
		futureTotal++
	}
	return needed, nil
}

// ClassesCanMiss returns how many consecutive classes can be skipped while
// staying at or above target. It returns 0 when already below target.
func ClassesCanMiss(attended, total int, target float64) (int, error) {
	if err := checkRatio(attended, total, target); err != nil {
		return 0, err
	}
	if percent(attended, total) < target {
		return 0, nil
	}

	count := 0
	futureTotal := total
	for percent(attended, futureTotal) >= target {
		if count >= MaxIterations {
			return 0, fmt.Errorf("%w: no result within %d classes", ErrUnreachableTarget, MaxIterations)
		}
		count++
		futureTotal++
	}
	return count - 1, nil
}

func checkRatio(attended, total int, target float64) error {
	if total <= 0 {
		return fmt.Errorf("%w: total must be positive, got %d", ErrInvalidInput, total)
	}
	if attended < 0 {
		return fmt.Errorf("%w: attended must not be negative, got %d", ErrInvalidInput, attended)
	}
	if target <= 0 || target > 100 {
		return fmt.Errorf("%w: target must be in (0, 100], got %v", ErrInvalidInput, target)
	}
	return nil
}
