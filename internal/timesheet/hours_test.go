package timesheet

import (
	"testing"

	"github.com/username/jalali-timesheet/pkg/timeutil"
)

func TestComputeHours(t *testing.T) {
	const (
		standard = 540 // 9 hours
		cap      = 60  // 1 hour
	)

	tests := []struct {
		name         string
		entry        int // minutes since midnight
		exit         int
		wantNormal   float64
		wantOvertime string
	}{
		{
			name:         "reference shift 09:45 to 19:10",
			entry:        9*60 + 45,
			exit:         19*60 + 10,
			wantNormal:   9.00,
			wantOvertime: "0:25",
		},
		{
			name:         "exact standard shift",
			entry:        10 * 60,
			exit:         19 * 60,
			wantNormal:   9.00,
			wantOvertime: "0:00",
		},
		{
			name:         "short shift stays under the standard cap",
			entry:        10 * 60,
			exit:         18 * 60,
			wantNormal:   8.00,
			wantOvertime: "0:00",
		},
		{
			name:         "excess beyond the cap is discarded",
			entry:        9 * 60,
			exit:         20 * 60, // 11h worked, 2h over standard
			wantNormal:   9.00,
			wantOvertime: "1:00",
		},
		{
			name:         "overtime lands exactly on the cap",
			entry:        10 * 60,
			exit:         20 * 60,
			wantNormal:   9.00,
			wantOvertime: "1:00",
		},
		{
			name:         "fractional normal hours rounded to 2 decimals",
			entry:        10 * 60,
			exit:         10*60 + 100, // 100 minutes = 1.6667h
			wantNormal:   1.67,
			wantOvertime: "0:00",
		},
		{
			name:         "zero-length interval",
			entry:        600,
			exit:         600,
			wantNormal:   0,
			wantOvertime: "0:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHours(tt.entry, tt.exit, standard, cap)

			if got.NormalHours != tt.wantNormal {
				t.Errorf("NormalHours = %v, want %v", got.NormalHours, tt.wantNormal)
			}
			if got.Overtime != tt.wantOvertime {
				t.Errorf("Overtime = %q, want %q", got.Overtime, tt.wantOvertime)
			}
			if got.NormalMinutes > standard {
				t.Errorf("NormalMinutes %d exceeds standard %d", got.NormalMinutes, standard)
			}
			if got.OvertimeMinutes < 0 || got.OvertimeMinutes > cap {
				t.Errorf("OvertimeMinutes %d outside [0, %d]", got.OvertimeMinutes, cap)
			}
			if got.NormalMinutes+got.OvertimeMinutes > got.WorkedMinutes {
				t.Errorf("normal %d + overtime %d exceeds worked %d",
					got.NormalMinutes, got.OvertimeMinutes, got.WorkedMinutes)
			}
		})
	}
}

func TestComputeHoursIsPure(t *testing.T) {
	first := ComputeHours(585, 1150, 540, 60)
	second := ComputeHours(585, 1150, 540, 60)

	if first != second {
		t.Errorf("ComputeHours not pure: %+v vs %+v", first, second)
	}
}

func TestOvertimeRoundTrip(t *testing.T) {
	for minutes := 0; minutes <= 60; minutes++ {
		formatted := timeutil.FormatHM(minutes)
		parsed, err := timeutil.ParseHM(formatted)
		if err != nil {
			t.Fatalf("ParseHM(%q) unexpected error: %v", formatted, err)
		}
		if parsed != minutes {
			t.Errorf("round trip of %d minutes via %q = %d", minutes, formatted, parsed)
		}
	}
}
