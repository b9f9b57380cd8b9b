package exceldiff

import "errors"

// ErrInvalidThreshold indicates a similarity threshold outside (0,1].
var ErrInvalidThreshold = errors.New("similarity threshold must be in (0,1]")

// ErrMissingWorkbook indicates a nil workbook was passed to Compare.
var ErrMissingWorkbook = errors.New("missing workbook")
