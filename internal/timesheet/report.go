package timesheet

import (
	"github.com/username/jalali-timesheet/internal/calendar"
	"github.com/username/jalali-timesheet/pkg/timeutil"
)

// Row is one day of the generated timesheet. Field order is stable and
// documented because the exporter maps columns positionally from it.
//
// Non-workday rows carry the sentinel "0:00" entry/exit, empty short dates,
// zero normal hours and an empty overtime display.
type Row struct {
	Index       int           // 1-based row number in calendar order
	Date        calendar.Date // the Jalali day
	WeekdayName string        // Persian weekday name, annotated on holidays
	Type        calendar.DayType
	EntryDate   string // "MM/DD", workday rows only
	ExitDate    string // "MM/DD", workday rows only
	Entry       string // "HH:MM" or "0:00"
	Exit        string // "HH:MM" or "0:00"
	NormalHours float64
	Overtime    string // "H:MM" or ""

	// Minute-resolution counterparts, exposed so the exporter never has to
	// re-derive a value from a formatted field.
	NormalMinutes   int
	OvertimeMinutes int
}

// IsVacation reports whether the row is a vacation day.
func (r Row) IsVacation() bool {
	return r.Type == calendar.DayTypeVacation
}

// IsWorkday reports whether the row has synthesized times.
func (r Row) IsWorkday() bool {
	return r.Type == calendar.DayTypeWorkday
}

// Totals aggregates the month. All sums are order-insensitive.
type Totals struct {
	NormalMinutes   int
	OvertimeMinutes int
	VacationMinutes int // vacation-day count x configured credit
	VacationDays    int
	WorkDays        int
	Weekends        int
	Holidays        int
}

// NormalHM formats the normal-hours total as "H:MM".
func (t Totals) NormalHM() string { return timeutil.FormatHM(t.NormalMinutes) }

// OvertimeHM formats the overtime total as "H:MM".
func (t Totals) OvertimeHM() string { return timeutil.FormatHM(t.OvertimeMinutes) }

// VacationHM formats the vacation-credit total as "H:MM".
func (t Totals) VacationHM() string { return timeutil.FormatHM(t.VacationMinutes) }

// Report is the full output of one generation call: exactly one row per
// calendar day of the target month, in calendar order, plus totals.
type Report struct {
	Year   int
	Month  int
	Rows   []Row
	Totals Totals
}
