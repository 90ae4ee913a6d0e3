package timesheet

import (
	"fmt"
	"math/rand"

	"github.com/username/jalali-timesheet/internal/calendar"
	"github.com/username/jalali-timesheet/internal/config"
	"github.com/username/jalali-timesheet/internal/holiday"
	"github.com/username/jalali-timesheet/pkg/timeutil"
	"go.uber.org/zap"
)

// zeroClock is the sentinel entry/exit value for non-workday rows.
const zeroClock = "0:00"

// holidayAnnotation marks public-holiday rows in the weekday column.
const holidayAnnotation = " (تعطیل رسمی)"

// Generator produces monthly timesheet reports.
type Generator struct {
	cfg      *config.Config
	registry holiday.Registry
	logger   *zap.Logger
}

// NewGenerator creates a new report generator.
func NewGenerator(cfg *config.Config, registry holiday.Registry, logger *zap.Logger) *Generator {
	return &Generator{
		cfg:      cfg,
		registry: registry,
		logger:   logger,
	}
}

// Generate builds the full report for one Jalali month as a single atomic
// computation: inputs are read once up front, every day of the month is
// classified and filled, and either the complete report or an error is
// returned. There are no partial results.
//
// The random source is owned by this call, so concurrent Generate calls
// with separate sources are safe.
func (g *Generator) Generate(year, month int, vacations map[string]struct{}, rng *rand.Rand) (*Report, error) {
	entry, err := g.cfg.Report.EntryMinutes()
	if err != nil {
		return nil, fmt.Errorf("bad nominal entry time: %w", err)
	}
	exit, err := g.cfg.Report.ExitMinutes()
	if err != nil {
		return nil, fmt.Errorf("bad nominal exit time: %w", err)
	}

	dates, err := calendar.MonthDates(year, month)
	if err != nil {
		return nil, err
	}

	holidays, err := g.registry.HolidaysFor(year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve holidays for %d: %w", year, err)
	}
	if len(holidays) == 0 {
		g.logger.Info("No holiday data for year, generating without public holidays",
			zap.Int("year", year))
	}

	weekend := g.cfg.Report.WeekendSet()
	synth := NewSynthesizer(g.cfg.Jitter.MaxBeforeMinutes, g.cfg.Jitter.MaxAfterMinutes, rng)

	g.logger.Info("Generating timesheet",
		zap.Int("year", year),
		zap.Int("month", month),
		zap.Int("days", len(dates)),
		zap.Int("holidays", len(holidays)),
		zap.Int("vacations", len(vacations)))

	report := &Report{
		Year:  year,
		Month: month,
		Rows:  make([]Row, 0, len(dates)),
	}

	for i, date := range dates {
		weekdayName := calendar.WeekdayName(date)
		dayType := Classify(date, weekdayName, weekend, holidays, vacations)

		row := Row{
			Index:       i + 1,
			Date:        date,
			WeekdayName: weekdayName,
			Type:        dayType,
			Entry:       zeroClock,
			Exit:        zeroClock,
		}

		switch dayType {
		case calendar.DayTypeWorkday:
			entryJittered, exitJittered := synth.Synthesize(entry, exit)
			hours := ComputeHours(entryJittered, exitJittered,
				g.cfg.Report.StandardMinutes, g.cfg.Report.OvertimeCapMinutes)

			row.Entry = timeutil.FormatClock(entryJittered)
			row.Exit = timeutil.FormatClock(exitJittered)
			row.EntryDate = date.Short()
			row.ExitDate = date.Short()
			row.NormalHours = hours.NormalHours
			row.Overtime = hours.Overtime
			row.NormalMinutes = hours.NormalMinutes
			row.OvertimeMinutes = hours.OvertimeMinutes

			report.Totals.WorkDays++
			report.Totals.NormalMinutes += hours.NormalMinutes
			report.Totals.OvertimeMinutes += hours.OvertimeMinutes

		case calendar.DayTypeWeekend:
			report.Totals.Weekends++

		case calendar.DayTypeHoliday:
			row.WeekdayName += holidayAnnotation
			report.Totals.Holidays++

		case calendar.DayTypeVacation:
			report.Totals.VacationDays++
			report.Totals.VacationMinutes += g.cfg.Report.VacationCreditMinutes
		}

		report.Rows = append(report.Rows, row)
	}

	g.logger.Info("Timesheet generated",
		zap.Int("work_days", report.Totals.WorkDays),
		zap.Int("weekends", report.Totals.Weekends),
		zap.Int("holidays", report.Totals.Holidays),
		zap.Int("vacation_days", report.Totals.VacationDays),
		zap.String("normal_total", report.Totals.NormalHM()),
		zap.String("overtime_total", report.Totals.OvertimeHM()))

	return report, nil
}
