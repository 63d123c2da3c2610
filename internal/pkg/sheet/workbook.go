// Package sheet reads attendance workbooks maintained by HR staff. Each
// workbook carries one sheet of attendance rows and one of break rows, both
// with a single header row.
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

type Workbook struct {
	path string
}

func NewWorkbook(path string) *Workbook {
	return &Workbook{path: path}
}

// Rows returns the data rows of the named sheet, header excluded. Cells come
// back as the strings the sheet displays, which is what the aggregation
// parsers expect.
func (w *Workbook) Rows(sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", w.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}
