package fs

import (
	"context"
	"encoding/json"
	"io"

	"github.com/fwojciec/clinicscrape"
)

var _ clinicscrape.RecordStore = (*JSONStore)(nil)

// JSONStore writes records as an indented JSON array.
type JSONStore struct {
	path string
}

// NewJSONStore creates a JSONStore writing to path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// SaveRecords replaces the file with the given records.
func (s *JSONStore) SaveRecords(ctx context.Context, records []*clinicscrape.ClinicRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if records == nil {
		records = []*clinicscrape.ClinicRecord{}
	}
	return WriteAtomic(s.path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	})
}
