// Package export renders a generated timesheet into the fixed multi-header
// spreadsheet layout the payroll office expects: nine single columns, then
// three merged header groups (overtime breakdown, deduction/absence, leave),
// one data row per day and a totals row at the bottom.
package export

import (
	"fmt"

	"github.com/username/jalali-timesheet/internal/timesheet"
	"github.com/username/jalali-timesheet/pkg/timeutil"
	"github.com/xuri/excelize/v2"
)

const sheetName = "کارکرد ماهانه"

// Column positions in the fixed layout (0-based). The data columns the
// generator fills sit on the left; the overtime value lands in the first
// column of the overtime group and the vacation credit in the paid-leave
// column of the leave group. The remaining group columns are left blank for
// manual payroll entries.
const (
	colIndex       = 0
	colWeekday     = 1
	colDate        = 2
	colEntryDate   = 3
	colExitDate    = 4
	colEntry       = 5
	colExit        = 6
	colTotalHours  = 7
	colNormalHours = 8
	colOvertime    = 9
	colPaidLeave   = 25

	overtimeGroupStart  = 9
	overtimeGroupEnd    = 15
	deductionGroupStart = 16
	deductionGroupEnd   = 23
	leaveGroupStart     = 24
	leaveGroupEnd       = 26

	columnCount = 27
)

var singleHeaders = []string{
	"ردیف", "روز هفته", "تاریخ", "تاریخ ورود", "تاریخ خروج",
	"ورود", "خروج", "ساعت کار کل", "ساعت کار عادی",
}

var groupHeaders = []struct {
	title      string
	start, end int
}{
	{"اضافه کار", overtimeGroupStart, overtimeGroupEnd},
	{"کسر کار", deductionGroupStart, deductionGroupEnd},
	{"مرخصی", leaveGroupStart, leaveGroupEnd},
}

// subHeaders are the second header row labels for the grouped columns,
// keyed by column index.
var subHeaders = map[int]string{
	9:  "اضافه کار عادی",
	10: "اضافه کار تعطیل",
	11: "اضافه کار در ماموریت",
	12: "اضافه کار ویژه",
	17: "تاخیر شروع",
	18: "تعجیل خروج",
	19: "غیبت",
	20: "تاخیر غیرمجاز",
	21: "تعجیل غیرمجاز",
	22: "ویژه",
	25: "مرخصی با حقوق",
	26: "بدون حقوق",
}

// Exporter writes timesheet reports as xlsx workbooks.
type Exporter struct {
	vacationCreditMinutes int
}

// NewExporter creates an Exporter. vacationCreditMinutes is the fixed credit
// written into the paid-leave column for each vacation row.
func NewExporter(vacationCreditMinutes int) *Exporter {
	return &Exporter{vacationCreditMinutes: vacationCreditMinutes}
}

// Export renders the report and saves it to path.
func (e *Exporter) Export(report *timesheet.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	rtl := true
	if err := f.SetSheetView(sheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return fmt.Errorf("set sheet view: %w", err)
	}

	sm := newStyleManager(f)

	if err := e.writeHeaders(f, sm); err != nil {
		return err
	}

	for i, row := range report.Rows {
		if err := e.writeRow(f, sm, 2+i, row); err != nil {
			return fmt.Errorf("row %d: %w", row.Index, err)
		}
	}

	if err := e.writeTotals(f, sm, 2+len(report.Rows), report.Totals); err != nil {
		return err
	}

	if err := e.setColumnWidths(f); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	return nil
}

// writeHeaders fills the two header rows: single columns merged vertically,
// group titles merged horizontally over their sub-columns.
func (e *Exporter) writeHeaders(f *excelize.File, sm *styleManager) error {
	headerStyle, err := sm.header()
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for col, title := range singleHeaders {
		top := cellName(0, col)
		bottom := cellName(1, col)
		if err := f.SetCellStr(sheetName, top, title); err != nil {
			return fmt.Errorf("header %q: %w", title, err)
		}
		if err := f.MergeCell(sheetName, top, bottom); err != nil {
			return fmt.Errorf("merge header %q: %w", title, err)
		}
	}

	for _, g := range groupHeaders {
		start := cellName(0, g.start)
		end := cellName(0, g.end)
		if err := f.SetCellStr(sheetName, start, g.title); err != nil {
			return fmt.Errorf("group header %q: %w", g.title, err)
		}
		if err := f.MergeCell(sheetName, start, end); err != nil {
			return fmt.Errorf("merge group %q: %w", g.title, err)
		}
	}

	for col, title := range subHeaders {
		if err := f.SetCellStr(sheetName, cellName(1, col), title); err != nil {
			return fmt.Errorf("sub header %q: %w", title, err)
		}
	}

	if err := f.SetCellStyle(sheetName, cellName(0, 0), cellName(1, columnCount-1), headerStyle); err != nil {
		return fmt.Errorf("header styles: %w", err)
	}

	return nil
}

// writeRow fills one data row at the given 0-based sheet row.
func (e *Exporter) writeRow(f *excelize.File, sm *styleManager, sheetRow int, row timesheet.Row) error {
	cellStyle, err := sm.cell()
	if err != nil {
		return fmt.Errorf("cell style: %w", err)
	}

	values := map[int]interface{}{
		colIndex:     row.Index,
		colWeekday:   row.WeekdayName,
		colDate:      row.Date.String(),
		colEntryDate: row.EntryDate,
		colExitDate:  row.ExitDate,
		colEntry:     row.Entry,
		colExit:      row.Exit,
	}

	if row.IsWorkday() {
		values[colTotalHours] = timeutil.FormatHM(row.NormalMinutes)
		values[colNormalHours] = timeutil.FormatHM(row.NormalMinutes)
		values[colOvertime] = row.Overtime
	}
	if row.IsVacation() {
		values[colPaidLeave] = timeutil.FormatHM(e.vacationCreditMinutes)
	}

	for col, value := range values {
		if err := f.SetCellValue(sheetName, cellName(sheetRow, col), value); err != nil {
			return fmt.Errorf("col %d: %w", col, err)
		}
	}

	if err := f.SetCellStyle(sheetName, cellName(sheetRow, 0), cellName(sheetRow, columnCount-1), cellStyle); err != nil {
		return fmt.Errorf("row style: %w", err)
	}

	return nil
}

// writeTotals fills the aggregate row under the data block.
func (e *Exporter) writeTotals(f *excelize.File, sm *styleManager, sheetRow int, totals timesheet.Totals) error {
	totalsStyle, err := sm.totals()
	if err != nil {
		return fmt.Errorf("totals style: %w", err)
	}

	if err := f.SetCellStr(sheetName, cellName(sheetRow, 0), "مجموع"); err != nil {
		return fmt.Errorf("totals label: %w", err)
	}
	if err := f.MergeCell(sheetName, cellName(sheetRow, 0), cellName(sheetRow, colExit)); err != nil {
		return fmt.Errorf("merge totals label: %w", err)
	}

	values := map[int]string{
		colTotalHours:  totals.NormalHM(),
		colNormalHours: totals.NormalHM(),
		colOvertime:    totals.OvertimeHM(),
		colPaidLeave:   totals.VacationHM(),
	}
	for col, value := range values {
		if err := f.SetCellStr(sheetName, cellName(sheetRow, col), value); err != nil {
			return fmt.Errorf("totals col %d: %w", col, err)
		}
	}

	if err := f.SetCellStyle(sheetName, cellName(sheetRow, 0), cellName(sheetRow, columnCount-1), totalsStyle); err != nil {
		return fmt.Errorf("totals style: %w", err)
	}

	return nil
}

func (e *Exporter) setColumnWidths(f *excelize.File) error {
	widths := []struct {
		start, end int
		width      float64
	}{
		{colIndex, colIndex, 6},
		{colWeekday, colWeekday, 16},
		{colDate, colDate, 12},
		{colEntryDate, colExit, 10},
		{colTotalHours, colNormalHours, 12},
		{overtimeGroupStart, leaveGroupEnd, 11},
	}

	for _, w := range widths {
		start, err := excelize.ColumnNumberToName(w.start + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		end, err := excelize.ColumnNumberToName(w.end + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, start, end, w.width); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	return nil
}

// cellName converts 0-based row/col indices to an Excel cell reference.
func cellName(row, col int) string {
	name, _ := excelize.CoordinatesToCellName(col+1, row+1)
	return name
}
