package source

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/rentio/rentio/pkg/rentio/catalog"
)

// ReadCSV loads catalog rows from a CSV file.
func ReadCSV(path string) ([]catalog.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // row shape is validated per record

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
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
