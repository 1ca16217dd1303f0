package documents

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"service-tasks/internal/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	ContentTypeHTML  = "text/html; charset=utf-8"
	ContentTypeWord  = "application/msword"
	ContentTypeExcel = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type reportRow struct {
	Urgent bool
	Cells  []string
}

type reportView struct {
	Title       string
	GeneratedAt string
	Headers     []string
	Rows        []reportRow
	Total       string
}

// RenderReport - печатный HTML-отчёт по списку заявок.
func RenderReport(w io.Writer, title string, tasks []entities.Task, now time.Time) error {
	view := reportView{
		Title:       title,
		GeneratedAt: now.Format("02.01.2006 15:04"),
		Headers:     make([]string, len(ReportColumns)),
		Rows:        make([]reportRow, 0, len(tasks)),
	}
	for i, col := range ReportColumns {
		view.Headers[i] = col.Title
	}

	var total float64
	for i := range tasks {
		t := &tasks[i]
		row := reportRow{Urgent: t.UrgentRequest, Cells: make([]string, len(ReportColumns))}
		for j, col := range ReportColumns {
			row.Cells[j] = col.Value(t)
		}
		view.Rows = append(view.Rows, row)
		if t.ServiceTotal.Valid {
			total += t.ServiceTotal.Float64
		}
	}
	view.Total = fmt.Sprintf("%.2f", total)

	return templates.ExecuteTemplate(w, "report.html", view)
}
