package calendar

import (
	"fmt"
	"time"
)

// The arithmetic below uses the 33-year cycle approximation of the Jalali
// calendar, which agrees with the observational calendar for every year in
// [minYear, maxYear]. Both hard-coded month-length tables found in earlier
// renditions of this tool disagreed with each other and are not used.
const (
	minYear = 1178
	maxYear = 1633
)

// anchor pins 1 Farvardin 1404 to its Gregorian equivalent, 21 March 2025.
var (
	anchorDate      = Date{Year: 1404, Month: 1, Day: 1}
	anchorGregorian = time.Date(2025, time.March, 21, 0, 0, 0, 0, time.UTC)
)

// leapRemainders are the year-mod-33 values that mark a leap year in the
// 33-year cycle.
var leapRemainders = map[int]struct{}{
	1: {}, 5: {}, 9: {}, 13: {}, 17: {}, 22: {}, 26: {}, 30: {},
}

// IsLeapYear reports whether the given Jalali year has 366 days.
func IsLeapYear(year int) bool {
	_, ok := leapRemainders[year%33]
	return ok
}

// DaysInMonth returns the number of days in the given Jalali month.
// Months 1-6 have 31 days, months 7-11 have 30, and Esfand has 29 or 30
// depending on the leap year.
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("%w: month %d not in 1..12", ErrInvalidMonth, month)
	}
	if year < minYear || year > maxYear {
		return 0, fmt.Errorf("%w: year %d not in %d..%d", ErrInvalidMonth, year, minYear, maxYear)
	}

	switch {
	case month <= 6:
		return 31, nil
	case month <= 11:
		return 30, nil
	case IsLeapYear(year):
		return 30, nil
	default:
		return 29, nil
	}
}

// MonthDates enumerates every day of the given Jalali month in ascending
// order. The result is recomputed on each call.
func MonthDates(year, month int) ([]Date, error) {
	count, err := DaysInMonth(year, month)
	if err != nil {
		return nil, err
	}

	dates := make([]Date, 0, count)
	for day := 1; day <= count; day++ {
		dates = append(dates, Date{Year: year, Month: month, Day: day})
	}

	return dates, nil
}

func daysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

func dayOfYear(d Date) int {
	days := d.Day
	for m := 1; m < d.Month; m++ {
		if m <= 6 {
			days += 31
		} else {
			days += 30
		}
	}
	return days
}

// daysFromAnchor counts the days between the anchor date and d,
// negative when d precedes the anchor.
func daysFromAnchor(d Date) int {
	days := 0
	if d.Year >= anchorDate.Year {
		for y := anchorDate.Year; y < d.Year; y++ {
			days += daysInYear(y)
		}
	} else {
		for y := d.Year; y < anchorDate.Year; y++ {
			days -= daysInYear(y)
		}
	}
	return days + dayOfYear(d) - 1
}

// ToGregorian converts a Jalali date to the corresponding Gregorian day
// at midnight UTC.
func ToGregorian(d Date) time.Time {
	return anchorGregorian.AddDate(0, 0, daysFromAnchor(d))
}

// FromGregorian converts a Gregorian timestamp to the Jalali date of the
// same day. The time-of-day component is ignored.
func FromGregorian(t time.Time) Date {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(day.Sub(anchorGregorian).Hours() / 24)

	year := anchorDate.Year
	for offset < 0 {
		year--
		offset += daysInYear(year)
	}
	for offset >= daysInYear(year) {
		offset -= daysInYear(year)
		year++
	}

	// offset is now a zero-based day-of-year within year.
	month := 1
	for {
		monthDays := 31
		if month > 6 {
			monthDays = 30
		}
		if month == 12 && !IsLeapYear(year) {
			monthDays = 29
		}
		if offset < monthDays {
			return Date{Year: year, Month: month, Day: offset + 1}
		}
		offset -= monthDays
		month++
	}
}

// Today returns the current Jalali date.
func Today() Date {
	return FromGregorian(time.Now())
}

// weekdayNames maps Go weekdays to Persian day names. The week starts on
// Saturday (شنبه); Thursday and Friday are the customary weekend.
var weekdayNames = map[time.Weekday]string{
	time.Saturday:  "شنبه",
	time.Sunday:    "یکشنبه",
	time.Monday:    "دوشنبه",
	time.Tuesday:   "سه‌شنبه",
	time.Wednesday: "چهارشنبه",
	time.Thursday:  "پنج‌شنبه",
	time.Friday:    "جمعه",
}

// Weekday returns the Go weekday of a Jalali date.
func Weekday(d Date) time.Weekday {
	return ToGregorian(d).Weekday()
}

// WeekdayName returns the Persian weekday name of a Jalali date.
func WeekdayName(d Date) string {
	return weekdayNames[Weekday(d)]
}

// IsWeekdayName reports whether the given string is a known Persian
// weekday name. Used to validate configured weekend days.
func IsWeekdayName(name string) bool {
	for _, n := range weekdayNames {
		if n == name {
			return true
		}
	}
	return false
}
