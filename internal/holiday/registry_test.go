package holiday

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestStaticRegistry(t *testing.T) {
	r := NewStaticRegistry()

	set, err := r.HolidaysFor(1404)
	if err != nil {
		t.Fatalf("HolidaysFor(1404) unexpected error: %v", err)
	}
	if len(set) != 27 {
		t.Errorf("HolidaysFor(1404) returned %d dates, want 27", len(set))
	}
	for _, d := range []string{"1404/01/01", "1404/01/04", "1404/12/29"} {
		if !set.Contains(d) {
			t.Errorf("HolidaysFor(1404) missing %s", d)
		}
	}

	empty, err := r.HolidaysFor(1400)
	if err != nil {
		t.Fatalf("HolidaysFor(1400) unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("HolidaysFor(1400) = %d dates, want empty set", len(empty))
	}
}

func TestFileRegistry(t *testing.T) {
	content := `# official holidays
1404/01/01 نوروز
1404/01/13 روز طبیعت

1405/03/?? unresolved placeholder
not-a-date
1404/2/26
`
	path := filepath.Join(t.TempDir(), "holidays.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	r := NewFileRegistry(path, zap.NewNop())
	if err := r.Load(); err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	set, err := r.HolidaysFor(1404)
	if err != nil {
		t.Fatalf("HolidaysFor(1404) unexpected error: %v", err)
	}

	if len(set) != 3 {
		t.Errorf("HolidaysFor(1404) = %d dates, want 3 (malformed lines skipped)", len(set))
	}
	if !set.Contains("1404/02/26") {
		t.Errorf("unpadded entry was not normalized to 1404/02/26")
	}

	empty, err := r.HolidaysFor(1405)
	if err != nil {
		t.Fatalf("HolidaysFor(1405) unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("placeholder entry leaked into 1405 set: %v", empty)
	}
}

func TestFileRegistryMissingFile(t *testing.T) {
	r := NewFileRegistry(filepath.Join(t.TempDir(), "absent.txt"), zap.NewNop())
	if err := r.Load(); err == nil {
		t.Error("Load() on a missing file expected error")
	}
}

func TestHTTPRegistry(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		switch r.URL.Path {
		case "/1404":
			w.Write([]byte(`{"year":1404,"dates":["1404/01/01","1404/01/02","1405/01/01","1404/13/99"]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	r := NewHTTPRegistry(server.URL, time.Hour, zap.NewNop())

	set, err := r.HolidaysFor(1404)
	if err != nil {
		t.Fatalf("HolidaysFor(1404) unexpected error: %v", err)
	}
	// Out-of-year and malformed payload entries must be dropped.
	if len(set) != 2 {
		t.Errorf("HolidaysFor(1404) = %d dates, want 2", len(set))
	}
	if !set.Contains("1404/01/01") || !set.Contains("1404/01/02") {
		t.Errorf("HolidaysFor(1404) missing expected dates: %v", set)
	}

	// Second call must be served from cache.
	if _, err := r.HolidaysFor(1404); err != nil {
		t.Fatalf("cached HolidaysFor(1404) unexpected error: %v", err)
	}
	if requests != 1 {
		t.Errorf("expected 1 upstream request, got %d", requests)
	}

	// Unknown year is an empty set, not a failure.
	empty, err := r.HolidaysFor(1399)
	if err != nil {
		t.Fatalf("HolidaysFor(1399) unexpected error: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("HolidaysFor(1399) = %d dates, want empty set", len(empty))
	}
}

// stubRegistry is a test double for composite fallback behavior.
type stubRegistry struct {
	set Set
	err error
}

func (s *stubRegistry) HolidaysFor(year int) (Set, error) {
	return s.set, s.err
}

func TestCompositeRegistry(t *testing.T) {
	primarySet := Set{"1404/01/01": {}}
	fallbackSet := Set{"1404/05/17": {}}

	tests := []struct {
		name     string
		primary  *stubRegistry
		wantDate string
	}{
		{
			name:     "primary answers when it has data",
			primary:  &stubRegistry{set: primarySet},
			wantDate: "1404/01/01",
		},
		{
			name:     "fallback answers when primary fails",
			primary:  &stubRegistry{err: errors.New("connection refused")},
			wantDate: "1404/05/17",
		},
		{
			name:     "fallback answers when primary has no data",
			primary:  &stubRegistry{set: Set{}},
			wantDate: "1404/05/17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCompositeRegistry(tt.primary, &stubRegistry{set: fallbackSet}, zap.NewNop())

			set, err := c.HolidaysFor(1404)
			if err != nil {
				t.Fatalf("HolidaysFor(1404) unexpected error: %v", err)
			}
			if !set.Contains(tt.wantDate) {
				t.Errorf("HolidaysFor(1404) = %v, want set containing %s", set, tt.wantDate)
			}
		})
	}
}
