package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/rentio/rentio/pkg/rentio/catalog"
)

// ReadXLSX loads catalog rows from the first sheet of an XLSX
// workbook. Column layout matches the CSV format.
func ReadXLSX(path string) ([]catalog.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	var rows []catalog.Row
	for i, record := range records {
		row, ok, err := rowFromFields(record, i+1)
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}
