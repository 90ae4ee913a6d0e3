package export

import (
	"path/filepath"
	"testing"

	"github.com/username/jalali-timesheet/internal/calendar"
	"github.com/username/jalali-timesheet/internal/timesheet"
	"github.com/xuri/excelize/v2"
)

func sampleReport() *timesheet.Report {
	return &timesheet.Report{
		Year:  1404,
		Month: 2,
		Rows: []timesheet.Row{
			{
				Index:       1,
				Date:        calendar.Date{Year: 1404, Month: 2, Day: 1},
				WeekdayName: "سه‌شنبه",
				Type:        calendar.DayTypeWorkday,
				EntryDate:   "02/01",
				ExitDate:    "02/01",
				Entry:       "09:45",
				Exit:        "19:10",

				NormalHours:     9.00,
				Overtime:        "0:25",
				NormalMinutes:   540,
				OvertimeMinutes: 25,
			},
			{
				Index:       2,
				Date:        calendar.Date{Year: 1404, Month: 2, Day: 2},
				WeekdayName: "چهارشنبه",
				Type:        calendar.DayTypeVacation,
				Entry:       "0:00",
				Exit:        "0:00",
			},
			{
				Index:       3,
				Date:        calendar.Date{Year: 1404, Month: 2, Day: 3},
				WeekdayName: "پنج‌شنبه",
				Type:        calendar.DayTypeWeekend,
				Entry:       "0:00",
				Exit:        "0:00",
			},
		},
		Totals: timesheet.Totals{
			NormalMinutes:   540,
			OvertimeMinutes: 25,
			VacationMinutes: 540,
			VacationDays:    1,
			WorkDays:        1,
			Weekends:        1,
		},
	}
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if err := NewExporter(540).Export(sampleReport(), path); err != nil {
		t.Fatalf("Export unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		t.Fatalf("sheet %q not found (index %d, err %v)", sheetName, idx, err)
	}

	cell := func(row, col int) string {
		value, err := f.GetCellValue(sheetName, cellName(row, col))
		if err != nil {
			t.Fatalf("read %s: %v", cellName(row, col), err)
		}
		return value
	}

	// Header rows: single columns on the first row, group titles merged
	// over their sub-columns, sub labels on the second row.
	headerChecks := []struct {
		row, col int
		want     string
	}{
		{0, colIndex, "ردیف"},
		{0, colWeekday, "روز هفته"},
		{0, colNormalHours, "ساعت کار عادی"},
		{0, overtimeGroupStart, "اضافه کار"},
		{0, deductionGroupStart, "کسر کار"},
		{0, leaveGroupStart, "مرخصی"},
		{1, colOvertime, "اضافه کار عادی"},
		{1, colPaidLeave, "مرخصی با حقوق"},
	}
	for _, hc := range headerChecks {
		if got := cell(hc.row, hc.col); got != hc.want {
			t.Errorf("header %s = %q, want %q", cellName(hc.row, hc.col), got, hc.want)
		}
	}

	// Workday row.
	if got := cell(2, colIndex); got != "1" {
		t.Errorf("workday index = %q, want 1", got)
	}
	if got := cell(2, colDate); got != "1404/02/01" {
		t.Errorf("workday date = %q, want 1404/02/01", got)
	}
	if got := cell(2, colEntry); got != "09:45" {
		t.Errorf("workday entry = %q, want 09:45", got)
	}
	if got := cell(2, colTotalHours); got != "9:00" {
		t.Errorf("workday total hours = %q, want 9:00", got)
	}
	if got := cell(2, colOvertime); got != "0:25" {
		t.Errorf("workday overtime = %q, want 0:25", got)
	}
	if got := cell(2, colPaidLeave); got != "" {
		t.Errorf("workday paid leave = %q, want empty", got)
	}

	// Vacation row carries the fixed credit, no worked hours.
	if got := cell(3, colPaidLeave); got != "9:00" {
		t.Errorf("vacation paid leave = %q, want 9:00", got)
	}
	if got := cell(3, colTotalHours); got != "" {
		t.Errorf("vacation total hours = %q, want empty", got)
	}
	if got := cell(3, colEntry); got != "0:00" {
		t.Errorf("vacation entry = %q, want 0:00", got)
	}

	// Weekend row stays blank in the hour columns.
	if got := cell(4, colOvertime); got != "" {
		t.Errorf("weekend overtime = %q, want empty", got)
	}

	// Totals row sits under the data block.
	totalsRow := 2 + 3
	if got := cell(totalsRow, colIndex); got != "مجموع" {
		t.Errorf("totals label = %q, want مجموع", got)
	}
	if got := cell(totalsRow, colNormalHours); got != "9:00" {
		t.Errorf("totals normal = %q, want 9:00", got)
	}
	if got := cell(totalsRow, colOvertime); got != "0:25" {
		t.Errorf("totals overtime = %q, want 0:25", got)
	}
	if got := cell(totalsRow, colPaidLeave); got != "9:00" {
		t.Errorf("totals paid leave = %q, want 9:00", got)
	}
}

func TestExportBadPath(t *testing.T) {
	err := NewExporter(540).Export(sampleReport(), filepath.Join(t.TempDir(), "no-such-dir", "report.xlsx"))
	if err == nil {
		t.Error("Export into a missing directory expected error")
	}
}
