// Package export renders the two-week plan as a spreadsheet.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"mealweek/pkg/week/calendar"
	"mealweek/pkg/week/service"
)

const SheetName = "Woche"

var header = []string{"KW", "Tag", "Datum", "Rezept"}

// WriteWeeks writes one row per day. titles maps recipe ids to display
// names; unknown ids are written as the id itself.
func WriteWeeks(w io.Writer, weeks [][]service.WeekData, titles map[string]string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for i, h := range header {
		if err := setCell(f, i+1, 1, h); err != nil {
			return err
		}
	}

	row := 2
	for _, week := range weeks {
		for _, day := range week {
			recipe := ""
			if day.DishSelected {
				recipe = day.RecipeID
				if t, ok := titles[day.RecipeID]; ok {
					recipe = t
				}
			}
			vals := []any{isoWeek(day.Date), day.Name, day.Date, recipe}
			for col, v := range vals {
				if err := setCell(f, col+1, row, v); err != nil {
					return err
				}
			}
			row++
		}
	}

	if err := f.SetColWidth(SheetName, "A", "C", 12); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "D", "D", 40); err != nil {
		return err
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return err
	}
	return f.Write(w)
}

func setCell(f *excelize.File, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(SheetName, cell, v)
}

func isoWeek(day string) int {
	t, err := time.Parse(calendar.DayLayout, day)
	if err != nil {
		return 0
	}
	_, wk := t.ISOWeek()
	return wk
}
