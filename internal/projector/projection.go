package projector

import "fmt"

type Scenario struct {
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
}

// BuildProjection returns the current, target, attend-all and miss-all
// percentages in that order.
func BuildProjection(attended, total int, target float64, upcoming int) ([]Scenario, error) {
	current, err := ComputeCurrent(attended, total)
	if err != nil {
		return nil, err
	}
	if upcoming <= 0 {
		return nil, fmt.Errorf("%w: upcoming must be positive, got %d", ErrInvalidInput, upcoming)
	}
	return []Scenario{
		{Label: "Current %", Percentage: current},
		{Label: "Target %", Percentage: target},
		{Label: fmt.Sprintf("%d Attend All", upcoming), Percentage: percent(attended+upcoming, total+upcoming)},
		{Label: fmt.Sprintf("%d Miss All", upcoming), Percentage: percent(attended, total+upcoming)},
	}, nil
}
