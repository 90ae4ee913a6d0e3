package holiday

import (
	"go.uber.org/zap"
)

// CompositeRegistry implements Registry with a fallback strategy:
// the primary source (file or API) is asked first; when it fails or has no
// data for the year, the fallback (normally the built-in static tables)
// answers instead.
type CompositeRegistry struct {
	primary  Registry
	fallback Registry
	logger   *zap.Logger
}

// NewCompositeRegistry creates a CompositeRegistry.
func NewCompositeRegistry(primary, fallback Registry, logger *zap.Logger) *CompositeRegistry {
	return &CompositeRegistry{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// HolidaysFor resolves holidays for the year, preferring the primary source.
func (r *CompositeRegistry) HolidaysFor(year int) (Set, error) {
	set, err := r.primary.HolidaysFor(year)
	if err == nil && len(set) > 0 {
		return set, nil
	}

	if err != nil {
		r.logger.Warn("Primary holiday source failed, falling back",
			zap.Int("year", year),
			zap.Error(err))
	} else {
		r.logger.Debug("Primary holiday source has no data for year, falling back",
			zap.Int("year", year))
	}

	return r.fallback.HolidaysFor(year)
}
