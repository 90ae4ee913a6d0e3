package holiday

// Built-in Iranian public holiday tables, keyed by Jalali year. Entries are
// canonical "YYYY/MM/DD" strings. Maintained as static data; adding a year
// is a data change, not an API.
//
// The 1405 table is a forecast: dates tied to the lunar calendar can shift
// by a day once the official calendar for that year is published.
var staticTables = map[int][]string{
	1404: {
		"1404/01/01", "1404/01/02", "1404/01/03", "1404/01/04",
		"1404/01/11", "1404/01/12", "1404/01/13", "1404/01/14",
		"1404/01/21", "1404/02/26", "1404/03/14", "1404/03/25",
		"1404/04/07", "1404/04/17", "1404/04/27", "1404/05/17",
		"1404/05/26", "1404/06/04", "1404/07/13", "1404/07/20",
		"1404/08/17", "1404/08/25", "1404/09/17", "1404/10/08",
		"1404/10/29", "1404/11/22", "1404/12/29",
	},
	1405: {
		"1405/01/01", "1405/01/02", "1405/01/03", "1405/01/04",
		"1405/01/12", "1405/01/13", "1405/01/14", "1405/01/21",
		"1405/02/05", "1405/02/26", "1405/03/03", "1405/03/15",
		"1405/04/05", "1405/04/15", "1405/04/25", "1405/05/14",
		"1405/05/24", "1405/06/02", "1405/07/11", "1405/07/18",
		"1405/08/15", "1405/08/23", "1405/09/15", "1405/10/06",
		"1405/10/27", "1405/11/22", "1405/12/29",
	},
}

// StaticRegistry serves the built-in holiday tables.
type StaticRegistry struct{}

// NewStaticRegistry creates a registry over the built-in tables.
func NewStaticRegistry() *StaticRegistry {
	return &StaticRegistry{}
}

// HolidaysFor returns the built-in holiday set for the given year, or an
// empty set for years without a table.
func (r *StaticRegistry) HolidaysFor(year int) (Set, error) {
	dates, ok := staticTables[year]
	if !ok {
		return Set{}, nil
	}

	set := make(Set, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set, nil
}
