package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/quantiz/internal/plot"
	"github.com/abhisek/quantiz/internal/quizgen"
)

const sheetName = "Assessment"

var xlsxHeader = []string{
	"Order", "Question", "Option A", "Option B", "Option C", "Option D",
	"Option E", "Correct", "Explanation", "Subject", "Unit", "Topic",
	"Difficulty", "Plot",
}

// ExportXlsx writes the assessment as a spreadsheet workbook: a header row,
// one row per item, and an embedded coordinate-plane plot for items that
// carry one.
func ExportXlsx(path string, a *quizgen.Assessment) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:      a.Title,
		Identifier: a.ID,
	}); err != nil {
		return fmt.Errorf("set workbook properties: %w", err)
	}

	if err := writeXlsxHeader(f); err != nil {
		return err
	}

	for i, item := range a.Items {
		if err := writeXlsxItem(f, item, i); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func writeXlsxHeader(f *excelize.File) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for col, name := range xlsxHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return fmt.Errorf("write header %q: %w", name, err)
		}
	}

	endCell, _ := excelize.CoordinatesToCellName(len(xlsxHeader), 1)
	if err := f.SetCellStyle(sheetName, "A1", endCell, bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	// Question and explanation columns need room.
	if err := f.SetColWidth(sheetName, "B", "B", 60); err != nil {
		return err
	}
	return f.SetColWidth(sheetName, "I", "I", 60)
}

func writeXlsxItem(f *excelize.File, item quizgen.Item, index int) error {
	row := index + 2
	values := []any{
		index + 1,
		quizgen.CleanText(item.Question),
		quizgen.CleanText(item.Options[0]),
		quizgen.CleanText(item.Options[1]),
		quizgen.CleanText(item.Options[2]),
		quizgen.CleanText(item.Options[3]),
		quizgen.CleanText(item.Options[4]),
		string(rune('A' + item.CorrectIndex)),
		quizgen.CleanText(item.Explanation),
		quizgen.CleanText(item.Subject),
		quizgen.CleanText(item.Unit),
		quizgen.CleanText(item.Topic),
		quizgen.CleanText(item.Difficulty),
	}

	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, v); err != nil {
			return fmt.Errorf("write row %d: %w", row, err)
		}
	}

	if item.HasImage && item.Points != nil {
		png, err := plot.Render(item.Points)
		if err != nil {
			return fmt.Errorf("render plot for row %d: %w", row, err)
		}

		cell, err := excelize.CoordinatesToCellName(len(xlsxHeader), row)
		if err != nil {
			return err
		}
		if err := f.AddPictureFromBytes(sheetName, cell, &excelize.Picture{
			Extension: ".png",
			File:      png,
			Format: &excelize.GraphicOptions{
				ScaleX: 0.25,
				ScaleY: 0.25,
			},
		}); err != nil {
			return fmt.Errorf("embed plot for row %d: %w", row, err)
		}
		if err := f.SetRowHeight(sheetName, row, 120); err != nil {
			return err
		}
	}

	return nil
}
