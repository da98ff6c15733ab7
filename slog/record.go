package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/clinicscrape"
)

// Ensure LoggingRecordStore implements clinicscrape.RecordStore.
var _ clinicscrape.RecordStore = (*LoggingRecordStore)(nil)

// LoggingRecordStore wraps a RecordStore with logging.
type LoggingRecordStore struct {
	next   clinicscrape.RecordStore
	name   string
	logger *slog.Logger
}

// NewLoggingRecordStore creates a new LoggingRecordStore. The name
// identifies the destination in log entries, e.g. an output path.
func NewLoggingRecordStore(next clinicscrape.RecordStore, name string, logger *slog.Logger) *LoggingRecordStore {
	return &LoggingRecordStore{next: next, name: name, logger: logger}
}

// SaveRecords delegates to the wrapped store and logs the operation.
func (s *LoggingRecordStore) SaveRecords(ctx context.Context, records []*clinicscrape.ClinicRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save records",
			"dest", s.name,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveRecords(ctx, records)
}
