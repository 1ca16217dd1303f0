package documents

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"service-tasks/internal/entities"
)

const reportSheet = "Заявки"

// WriteExcel выгружает заявки в xlsx.
func WriteExcel(w io.Writer, tasks []entities.Task) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}

	headers := make([]interface{}, len(ReportColumns))
	for i, col := range ReportColumns {
		headers[i] = col.Title
	}
	if err := f.SetSheetRow(reportSheet, "A1", &headers); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(ReportColumns))
	if err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(reportSheet, "A1", lastCol+"1", style); err != nil {
		return err
	}

	for i := range tasks {
		row := make([]interface{}, len(ReportColumns))
		for j, col := range ReportColumns {
			row[j] = col.Value(&tasks[i])
		}
		if tasks[i].ServiceTotal.Valid {
			row[serviceTotalColumn] = tasks[i].ServiceTotal.Float64
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(reportSheet, cell, &row); err != nil {
			return err
		}
	}

	for i, col := range ReportColumns {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(reportSheet, name, name, col.Width); err != nil {
			return fmt.Errorf("ширина колонки %s: %w", name, err)
		}
	}

	return f.Write(w)
}

// Сумма пишется в Excel числом, чтобы по ней можно было считать.
var serviceTotalColumn = columnIndex("Сума послуги")

func columnIndex(title string) int {
	for i, col := range ReportColumns {
		if col.Title == title {
			return i
		}
	}
	panic("documents: нет колонки " + title)
}
