package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/bayneri/attendance/internal/evaluate"
)

const (
	summarySheet = "Summary"
	maxSheetName = 31
)

// WriteWorkbook writes an overview sheet and one chart sheet per projected course.
func WriteWorkbook(path string, summary evaluate.Summary) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), summarySheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := []interface{}{
		"Course",
		"Attended",
		"Total",
		"Target %",
		"Current %",
		"Status",
		"Classes needed",
		"Classes can miss",
		"Error",
	}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	used := map[string]bool{strings.ToLower(summarySheet): true}
	for i, course := range summary.Courses {
		row := []interface{}{
			course.Name,
			course.Query.Attended,
			course.Query.Total,
			course.Query.Target,
			"",
			course.Status,
			"",
			"",
			course.Error,
		}
		if course.Result != nil {
			row[4] = round2(course.Result.CurrentPercentage)
			if course.Result.ClassesNeeded != nil {
				row[6] = *course.Result.ClassesNeeded
			}
			if course.Result.ClassesCanMiss != nil {
				row[7] = *course.Result.ClassesCanMiss
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row: %w", course.Name, err)
		}

		if course.Result == nil {
			continue
		}
		sheet := uniqueSheetName(course.Name, used)
		if err := writeProjectionSheet(f, sheet, course); err != nil {
			return fmt.Errorf("write %s sheet: %w", course.Name, err)
		}
	}

	return f.SaveAs(path)
}

func writeProjectionSheet(f *excelize.File, sheet string, course evaluate.CourseResult) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"Scenario", "Percentage"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, scenario := range course.Result.Projection {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{scenario.Label, round2(scenario.Percentage)}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	last := len(course.Result.Projection) + 1
	ref := quoteSheet(sheet)
	return f.AddChart(sheet, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", ref),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", ref, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", ref, last),
		}},
		Title:  []excelize.RichTextRun{{Text: fmt.Sprintf("%s attendance projection", course.Name)}},
		Legend: excelize.ChartLegend{Position: "none"},
	})
}

func uniqueSheetName(name string, used map[string]bool) string {
	base := sheetName(name)
	candidate := base
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func sheetName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}
		return r
	}, name)
	cleaned = strings.Trim(strings.TrimSpace(cleaned), "'")
	if cleaned == "" {
		cleaned = "course"
	}
	return truncateRunes(cleaned, maxSheetName)
}

func truncateRunes(input string, max int) string {
	runes := []rune(input)
	if len(runes) <= max {
		return input
	}
	return string(runes[:max])
}

func quoteSheet(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}
