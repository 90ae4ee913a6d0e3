package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMonth is returned for a month outside 1-12 or a year outside
// the supported range of the leap-year rule.
var ErrInvalidMonth = errors.New("invalid jalali month")

// DayType represents the classification of a calendar day.
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeVacation
)

// String returns a human-readable label for the day type.
func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeVacation:
		return "vacation"
	default:
		return "unknown"
	}
}

// Date represents a Jalali calendar date.
type Date struct {
	Year  int
	Month int
	Day   int
}

// String renders the canonical zero-padded "YYYY/MM/DD" form.
func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// Short renders the "MM/DD" form used for entry/exit date columns.
func (d Date) Short() string {
	return fmt.Sprintf("%02d/%02d", d.Month, d.Day)
}

// ParseDate parses a "YYYY/MM/DD" string into a Date. Month and day may be
// written with or without a leading zero; the canonical form is restored
// by String(). The date must be a real day of the given month.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("malformed jalali date %q: expected YYYY/MM/DD", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return Date{}, fmt.Errorf("malformed jalali date %q: bad year", s)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return Date{}, fmt.Errorf("malformed jalali date %q: bad month", s)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return Date{}, fmt.Errorf("malformed jalali date %q: bad day", s)
	}

	days, err := DaysInMonth(year, month)
	if err != nil {
		return Date{}, fmt.Errorf("malformed jalali date %q: %w", s, err)
	}
	if day < 1 || day > days {
		return Date{}, fmt.Errorf("malformed jalali date %q: day out of range", s)
	}

	return Date{Year: year, Month: month, Day: day}, nil
}
