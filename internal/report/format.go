package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bayneri/attendance/internal/projector"
)

const (
	attendAllIndex = 2
	missAllIndex   = 3
)

func formatTarget(target float64) string {
	return strconv.FormatFloat(target, 'f', -1, 64) + "%"
}

func formatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}

func formatCount(value *int) string {
	if value == nil {
		return "-"
	}
	return strconv.Itoa(*value)
}

func scenarioPercent(result *projector.Result, index int) string {
	if result == nil || len(result.Projection) <= index {
		return "-"
	}
	return formatPercent(result.Projection[index].Percentage)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
