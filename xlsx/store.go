// Package xlsx writes clinic records to Excel workbooks.
package xlsx

import (
	"context"
	"io"

	"github.com/fwojciec/clinicscrape"
	"github.com/fwojciec/clinicscrape/fs"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding exported records.
const SheetName = "Clinics"

var _ clinicscrape.RecordStore = (*Store)(nil)

// Store writes records as a single-sheet workbook.
type Store struct {
	path string
}

// NewStore creates a Store writing to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// SaveRecords replaces the workbook with the given records.
func (s *Store) SaveRecords(ctx context.Context, records []*clinicscrape.ClinicRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return err
	}

	header := fs.Columns
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := fs.Row(r)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	return fs.WriteAtomic(s.path, func(w io.Writer) error {
		return f.Write(w)
	})
}
