package timesheet

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestParseVacationList(t *testing.T) {
	input := `1404/02/10

1404/2/11
not a date
1405/03/??
  1404/02/12
`

	vacations, err := ParseVacationList(strings.NewReader(input), zap.NewNop())
	if err != nil {
		t.Fatalf("ParseVacationList unexpected error: %v", err)
	}

	want := []string{"1404/02/10", "1404/02/11", "1404/02/12"}
	if len(vacations) != len(want) {
		t.Fatalf("parsed %d dates, want %d: %v", len(vacations), len(want), vacations)
	}
	for _, d := range want {
		if _, ok := vacations[d]; !ok {
			t.Errorf("missing %s in parsed set", d)
		}
	}
}

func TestParseVacationListEmpty(t *testing.T) {
	vacations, err := ParseVacationList(strings.NewReader(""), zap.NewNop())
	if err != nil {
		t.Fatalf("ParseVacationList unexpected error: %v", err)
	}
	if len(vacations) != 0 {
		t.Errorf("expected empty set, got %v", vacations)
	}
}
