package timesheet

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/username/jalali-timesheet/internal/calendar"
	"go.uber.org/zap"
)

// ParseVacationList reads newline-delimited vacation dates. Blank lines are
// discarded; malformed lines are skipped with a warning and never abort the
// whole generation. Dates are normalized to the canonical zero-padded form
// so "1404/2/3" matches the generated "1404/02/03".
func ParseVacationList(r io.Reader, logger *zap.Logger) (map[string]struct{}, error) {
	vacations := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		date, err := calendar.ParseDate(line)
		if err != nil {
			logger.Warn("Skipping malformed vacation entry",
				zap.String("line", line),
				zap.Error(err))
			continue
		}

		vacations[date.String()] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading vacation list: %w", err)
	}

	return vacations, nil
}
