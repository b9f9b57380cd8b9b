package models

// Sheet is a named ordered table of rows.
type Sheet struct {
	// Name is the sheet name, unique within a workbook.
	Name string `json:"name"`
	// Rows are the sheet rows in file order.
	Rows []Row `json:"rows"`
}
