package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/learncode/internal/catalog"
	"github.com/abhisek/learncode/internal/progress"
)

// Sheet names in the progress report workbook.
const (
	CoursesSheet = "Courses"
	LessonsSheet = "Lessons"
)

// ReportFilename is the default download name of the progress report.
const ReportFilename = "learncode-progress.xlsx"

var (
	courseHeader = []any{"Course", "Title", "Track", "Completed", "Total", "Percentage", "Certificate"}
	lessonHeader = []any{"Course", "Lesson", "Title", "Completed", "Score", "Completed At"}
)

// WriteReport writes an XLSX workbook summarizing st against cat: one row
// per course on the Courses sheet and one row per catalog lesson on the
// Lessons sheet.
func WriteReport(w io.Writer, cat *catalog.Catalog, st progress.State) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", CoursesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(LessonsSheet); err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	courses := [][]any{courseHeader}
	lessons := [][]any{lessonHeader}
	for _, c := range cat.Courses() {
		cp := st.CourseProgress(c.ID, cat)
		courses = append(courses, []any{
			c.ID, c.Title, catalog.TrackDisplayName(c.Track),
			cp.Completed, cp.Total, cp.Percentage, yesNo(st.HasCertificate(c.ID)),
		})

		for _, l := range c.Lessons {
			row := []any{c.ID, l.ID, l.Title, "No", "", ""}
			if rec, ok := st.LessonProgress(c.ID, l.ID); ok {
				row[3] = yesNo(rec.Completed)
				if rec.Score != nil {
					row[4] = *rec.Score
				}
				row[5] = rec.CompletedAt
			}
			lessons = append(lessons, row)
		}
	}

	if err := writeSheet(f, CoursesSheet, courses, bold); err != nil {
		return err
	}
	if err := writeSheet(f, LessonsSheet, lessons, bold); err != nil {
		return err
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return fmt.Errorf("size %s columns: %w", sheet, err)
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
