package holiday

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/username/jalali-timesheet/internal/calendar"
	"go.uber.org/zap"
)

// FileRegistry implements Registry using a local text file.
//
// File format, one entry per line:
//
//	YYYY/MM/DD [note]
//	# comment
//
// Example: 1404/01/13 روز طبیعت
//
// Malformed dates (including placeholder entries such as "1405/03/??") are
// skipped with a warning; they must never match a real day by accident.
type FileRegistry struct {
	filePath string
	logger   *zap.Logger
	data     map[int]Set
}

// NewFileRegistry creates a FileRegistry for the given file path.
func NewFileRegistry(filePath string, logger *zap.Logger) *FileRegistry {
	return &FileRegistry{
		filePath: filePath,
		logger:   logger,
		data:     make(map[int]Set),
	}
}

// Load reads and parses the holiday file.
func (r *FileRegistry) Load() error {
	file, err := os.Open(r.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	loaded := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.SplitN(line, " ", 2)
		date, err := calendar.ParseDate(fields[0])
		if err != nil {
			r.logger.Warn("Skipping malformed holiday entry",
				zap.String("line", line),
				zap.Error(err))
			continue
		}

		set, ok := r.data[date.Year]
		if !ok {
			set = make(Set)
			r.data[date.Year] = set
		}
		set[date.String()] = struct{}{}
		loaded++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holiday file: %w", err)
	}

	r.logger.Info("Holiday file loaded",
		zap.String("file", r.filePath),
		zap.Int("years", len(r.data)),
		zap.Int("entries", loaded))

	return nil
}

// HolidaysFor returns the loaded holiday set for the given year, or an
// empty set when the file has no entries for it.
func (r *FileRegistry) HolidaysFor(year int) (Set, error) {
	set, ok := r.data[year]
	if !ok {
		return Set{}, nil
	}
	return set, nil
}
