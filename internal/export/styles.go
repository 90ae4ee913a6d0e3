package export

import "github.com/xuri/excelize/v2"

// styleManager caches workbook styles so each one is created only once.
type styleManager struct {
	file  *excelize.File
	cache map[string]int
}

func newStyleManager(f *excelize.File) *styleManager {
	return &styleManager{file: f, cache: make(map[string]int)}
}

// header returns a bold, centered, bordered style for header cells.
func (sm *styleManager) header() (int, error) {
	return sm.getOrCreate("header", &excelize.Style{
		Font:      &excelize.Font{Family: "Tahoma", Size: 10, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    thinBorder(),
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"EEEEEE"}},
	})
}

// cell returns a centered bordered style for data cells.
func (sm *styleManager) cell() (int, error) {
	return sm.getOrCreate("cell", &excelize.Style{
		Font:      &excelize.Font{Family: "Tahoma", Size: 10},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
}

// totals returns the bold style of the totals row.
func (sm *styleManager) totals() (int, error) {
	return sm.getOrCreate("totals", &excelize.Style{
		Font:      &excelize.Font{Family: "Tahoma", Size: 10, Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F5F5F5"}},
	})
}

func (sm *styleManager) getOrCreate(key string, style *excelize.Style) (int, error) {
	if id, ok := sm.cache[key]; ok {
		return id, nil
	}

	id, err := sm.file.NewStyle(style)
	if err != nil {
		return 0, err
	}

	sm.cache[key] = id
	return id, nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
