package timesheet

import (
	"github.com/username/jalali-timesheet/internal/calendar"
	"github.com/username/jalali-timesheet/internal/holiday"
)

// Classify decides the category of a single day. Precedence, first match
// wins: weekend, public holiday, vacation, workday. A registered holiday
// that lands on a weekend day is therefore reported as a weekend.
// Classification is fully deterministic; only time synthesis is random.
func Classify(date calendar.Date, weekdayName string, weekend map[string]struct{}, holidays holiday.Set, vacations map[string]struct{}) calendar.DayType {
	if _, ok := weekend[weekdayName]; ok {
		return calendar.DayTypeWeekend
	}
	if holidays.Contains(date.String()) {
		return calendar.DayTypeHoliday
	}
	if _, ok := vacations[date.String()]; ok {
		return calendar.DayTypeVacation
	}
	return calendar.DayTypeWorkday
}
