package fs

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/fwojciec/clinicscrape"
)

var _ clinicscrape.RecordStore = (*CSVStore)(nil)

// utf8BOM lets spreadsheet software detect UTF-8 for Hangul text.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVStore writes records as CSV with a header row.
type CSVStore struct {
	path string
	bom  bool
}

// CSVOption configures a CSVStore.
type CSVOption func(*CSVStore)

// WithBOM prefixes the file with a UTF-8 byte order mark.
func WithBOM(bom bool) CSVOption {
	return func(s *CSVStore) {
		s.bom = bom
	}
}

// NewCSVStore creates a CSVStore writing to path.
func NewCSVStore(path string, opts ...CSVOption) *CSVStore {
	s := &CSVStore{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveRecords replaces the file with the given records.
func (s *CSVStore) SaveRecords(ctx context.Context, records []*clinicscrape.ClinicRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return WriteAtomic(s.path, func(w io.Writer) error {
		if s.bom {
			if _, err := w.Write(utf8BOM); err != nil {
				return err
			}
		}
		cw := csv.NewWriter(w)
		if err := cw.Write(Columns); err != nil {
			return err
		}
		for _, r := range records {
			if err := cw.Write(Row(r)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}
