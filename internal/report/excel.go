// Package report serializes collected tables into a spreadsheet artifact.
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/ulko-io/ulko/internal/inventory"
)

// ExcelWriter writes one workbook per run with one sheet per table. The
// artifact name embeds the account ID and a second-precision timestamp.
type ExcelWriter struct {
	Dir string

	// now is swappable for deterministic file names in tests.
	now func() time.Time
}

// NewExcelWriter creates a writer targeting dir.
func NewExcelWriter(dir string) *ExcelWriter {
	return &ExcelWriter{Dir: dir, now: time.Now}
}

// Write serializes the tables and returns the artifact path. Sheet order and
// row order follow the input; the header is always row one, even for tables
// with zero rows.
func (w *ExcelWriter) Write(account string, tables []inventory.Table) (string, error) {
	if len(tables) == 0 {
		return "", fmt.Errorf("no tables to write")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, table := range tables {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), table.Name); err != nil {
				return "", fmt.Errorf("rename sheet %q: %w", table.Name, err)
			}
		} else {
			if _, err := f.NewSheet(table.Name); err != nil {
				return "", fmt.Errorf("create sheet %q: %w", table.Name, err)
			}
		}
		if err := writeTable(f, table); err != nil {
			return "", err
		}
	}

	name := fmt.Sprintf("aws_resources_%s_%s.xlsx", account, w.now().Format("20060102150405"))
	path := filepath.Join(w.Dir, name)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

func writeTable(f *excelize.File, table inventory.Table) error {
	if err := setRow(f, table.Name, 1, table.Header); err != nil {
		return err
	}
	for i, row := range table.Rows {
		if err := setRow(f, table.Name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, line int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", line, err)
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("write row %d of %q: %w", line, sheet, err)
	}
	return nil
}
