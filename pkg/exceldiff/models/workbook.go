package models

// Workbook is the full set of named sheets read from one file or revision.
// Sheet order follows the file; lookups by name go through an index so the
// order is never lost to a map.
type Workbook struct {
	// Name labels the workbook in diff output (file name, optionally with a
	// revision suffix).
	Name string `json:"name"`
	// Sheets are the sheets in file order.
	Sheets []*Sheet `json:"sheets"`

	index map[string]int
}

// NewWorkbook creates an empty workbook with the given display name.
func NewWorkbook(name string) *Workbook {
	return &Workbook{Name: name, index: make(map[string]int)}
}

// AddSheet appends a sheet, replacing any previous sheet with the same name.
func (w *Workbook) AddSheet(s *Sheet) {
	if w.index == nil {
		w.index = make(map[string]int)
	}
	if i, ok := w.index[s.Name]; ok {
		w.Sheets[i] = s
		return
	}
	w.index[s.Name] = len(w.Sheets)
	w.Sheets = append(w.Sheets, s)
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	i, ok := w.index[name]
	if !ok {
		return nil, false
	}
	return w.Sheets[i], true
}

// SheetNames returns the sheet names in file order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
