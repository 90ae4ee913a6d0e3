package holiday

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/username/jalali-timesheet/internal/calendar"
	"go.uber.org/zap"
)

const (
	defaultHTTPTimeout = 10 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// HTTPRegistry implements Registry against a remote holiday API.
//
// The endpoint is expected to answer GET {baseURL}/{year} with:
//
//	{"year": 1404, "dates": ["1404/01/01", "1404/01/02", ...]}
//
// Responses are cached per year with a TTL. A 404 means the service has no
// table for that year and is treated as an empty set, not a failure.
type HTTPRegistry struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	cacheTTL   time.Duration
	cache      map[int]*cachedYear
	cacheMu    sync.RWMutex
}

type cachedYear struct {
	data      Set
	fetchedAt time.Time
}

type yearResponse struct {
	Year  int      `json:"year"`
	Dates []string `json:"dates"`
}

// NewHTTPRegistry creates an HTTPRegistry for the given base URL.
func NewHTTPRegistry(baseURL string, cacheTTL time.Duration, logger *zap.Logger) *HTTPRegistry {
	if cacheTTL == 0 {
		cacheTTL = defaultCacheTTL
	}

	return &HTTPRegistry{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultHTTPTimeout,
		},
		logger:   logger,
		cacheTTL: cacheTTL,
		cache:    make(map[int]*cachedYear),
	}
}

// HolidaysFor returns the holiday set for the given year, fetching it from
// the API when the cache is cold or stale.
func (r *HTTPRegistry) HolidaysFor(year int) (Set, error) {
	r.cacheMu.RLock()
	if cached, ok := r.cache[year]; ok {
		if time.Since(cached.fetchedAt) < r.cacheTTL {
			r.cacheMu.RUnlock()
			r.logger.Debug("Using cached holiday data", zap.Int("year", year))
			return cached.data, nil
		}
	}
	r.cacheMu.RUnlock()

	set, err := r.fetchYear(year)
	if err != nil {
		return nil, err
	}

	r.cacheMu.Lock()
	r.cache[year] = &cachedYear{data: set, fetchedAt: time.Now()}
	r.cacheMu.Unlock()

	r.logger.Info("Holiday data fetched and cached",
		zap.Int("year", year),
		zap.Int("count", len(set)))

	return set, nil
}

func (r *HTTPRegistry) fetchYear(year int) (Set, error) {
	url := fmt.Sprintf("%s/%d", r.baseURL, year)

	r.logger.Debug("Fetching holiday data",
		zap.String("url", url),
		zap.Int("year", year))

	resp, err := r.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holiday data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		r.logger.Info("No holiday table for year", zap.Int("year", year))
		return Set{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday API returned status %d", resp.StatusCode)
	}

	var apiResp yearResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse holiday API response: %w", err)
	}

	set := make(Set, len(apiResp.Dates))
	for _, raw := range apiResp.Dates {
		date, err := calendar.ParseDate(raw)
		if err != nil {
			r.logger.Warn("Skipping malformed holiday date from API",
				zap.String("date", raw),
				zap.Error(err))
			continue
		}
		if date.Year != year {
			r.logger.Warn("Skipping holiday date outside requested year",
				zap.String("date", raw),
				zap.Int("year", year))
			continue
		}
		set[date.String()] = struct{}{}
	}

	return set, nil
}

// ClearCache drops all cached years.
func (r *HTTPRegistry) ClearCache() {
	r.cacheMu.Lock()
	defer r.cacheMu.Unlock()

	r.cache = make(map[int]*cachedYear)
	r.logger.Info("Holiday cache cleared")
}
