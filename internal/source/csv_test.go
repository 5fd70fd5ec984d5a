package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rentio/rentio/pkg/rentio/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadCSVSkipsHeader(t *testing.T) {
	path := writeFile(t, "catalog.csv",
		"Product Id,Product Name,Brand,Category,Price\n"+
			"1,sofa bed,ikea,furniture & decor,$50\n"+
			"2,book shelf,ikea,furniture & decor,$25\n")

	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Product != "sofa bed" || rows[0].Price != "$50" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Brand != "ikea" || rows[1].Category != "furniture & decor" {
		t.Errorf("rows[1] = %+v", rows[1])
	}
}

func TestReadCSVMalformedRow(t *testing.T) {
	path := writeFile(t, "catalog.csv",
		"1,sofa bed,ikea,furniture\n")

	_, err := ReadCSV(path)
	if !errors.Is(err, internalerr.ErrMalformedRow) {
		t.Errorf("err = %v, want ErrMalformedRow", err)
	}
}

func TestReadCSVExtraColumnsTolerated(t *testing.T) {
	path := writeFile(t, "catalog.csv",
		"1,sofa bed,ikea,furniture,$50,spare\n")

	rows, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(rows) != 1 || rows[0].Price != "$50" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestReadInfersFormatFromExtension(t *testing.T) {
	path := writeFile(t, "catalog.csv", "1,sofa bed,ikea,furniture,$50\n")

	rows, err := Read(path, "")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows, want 1", len(rows))
	}
}

func TestReadUnknownFormat(t *testing.T) {
	path := writeFile(t, "catalog.dat", "1,sofa bed,ikea,furniture,$50\n")

	_, err := Read(path, "")
	if !errors.Is(err, internalerr.ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Error("missing file should error")
	}
}
