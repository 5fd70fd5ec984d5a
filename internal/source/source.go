// Package source reads catalog files into raw rows. Two formats are
// supported: CSV and XLSX. Field values are passed through untouched;
// lowercase normalization happens at index build time.
package source

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rentio/rentio/pkg/rentio/catalog"
	"github.com/rentio/rentio/pkg/rentio/internalerr"
)

// The header row is identified by its first cell and skipped.
const headerID = "Product Id"

// Read loads catalog rows from path. An empty format is inferred from
// the file extension.
func Read(path, format string) ([]catalog.Row, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	switch format {
	case "csv":
		return ReadCSV(path)
	case "xlsx":
		return ReadXLSX(path)
	default:
		return nil, fmt.Errorf("format %q: %w", format, internalerr.ErrUnknownFormat)
	}
}

// rowFromFields validates one raw record. Rows with fewer than five
// fields abort the load.
func rowFromFields(fields []string, n int) (catalog.Row, bool, error) {
	if len(fields) == 0 {
		return catalog.Row{}, false, nil
	}
	if len(fields) < 5 {
		return catalog.Row{}, false, fmt.Errorf("row %d has %d fields: %w", n, len(fields), internalerr.ErrMalformedRow)
	}
	if fields[0] == headerID {
		return catalog.Row{}, false, nil
	}
	return catalog.Row{
		ID:       fields[0],
		Product:  fields[1],
		Brand:    fields[2],
		Category: fields[3],
		Price:    fields[4],
	}, true, nil
}
