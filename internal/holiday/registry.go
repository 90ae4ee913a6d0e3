package holiday

// Set is a lookup set of canonical "YYYY/MM/DD" date strings.
type Set map[string]struct{}

// Contains reports whether the set holds the given canonical date string.
func (s Set) Contains(date string) bool {
	_, ok := s[date]
	return ok
}

// Registry resolves the public holidays of a Jalali year.
//
// Implementations return an empty set (and no error) for years they have no
// data for; an error means the source itself failed and the caller should
// abort rather than silently generate a holiday-free month.
type Registry interface {
	HolidaysFor(year int) (Set, error)
}
