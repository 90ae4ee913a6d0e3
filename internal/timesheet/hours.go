package timesheet

import (
	"math"

	"github.com/username/jalali-timesheet/pkg/timeutil"
)

// HoursResult carries the derived hour values of one worked day.
type HoursResult struct {
	WorkedMinutes   int
	NormalMinutes   int     // min(worked, standard)
	NormalHours     float64 // NormalMinutes/60, rounded to 2 decimals
	OvertimeMinutes int     // clamp(worked-standard, 0, cap)
	Overtime        string  // OvertimeMinutes as "H:MM"
}

// ComputeHours derives normal and overtime values from a worked interval.
// Pure: identical inputs always produce identical output. Worked time up to
// standardMinutes counts as normal hours; the excess counts as overtime but
// is capped at overtimeCapMinutes no matter how long the shift ran.
func ComputeHours(entryMinutes, exitMinutes, standardMinutes, overtimeCapMinutes int) HoursResult {
	worked := exitMinutes - entryMinutes
	if worked < 0 {
		worked = 0
	}

	normal := worked
	if normal > standardMinutes {
		normal = standardMinutes
	}

	overtime := worked - standardMinutes
	if overtime < 0 {
		overtime = 0
	}
	if overtime > overtimeCapMinutes {
		overtime = overtimeCapMinutes
	}

	return HoursResult{
		WorkedMinutes:   worked,
		NormalMinutes:   normal,
		NormalHours:     math.Round(float64(normal)/60*100) / 100,
		OvertimeMinutes: overtime,
		Overtime:        timeutil.FormatHM(overtime),
	}
}
