package mock

import (
	"context"

	"github.com/fwojciec/clinicscrape"
)

var _ clinicscrape.RecordStore = (*RecordStore)(nil)

// RecordStore is a mock implementation of clinicscrape.RecordStore.
type RecordStore struct {
	SaveRecordsFn func(ctx context.Context, records []*clinicscrape.ClinicRecord) error
}

func (s *RecordStore) SaveRecords(ctx context.Context, records []*clinicscrape.ClinicRecord) error {
	return s.SaveRecordsFn(ctx, records)
}

var _ clinicscrape.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of clinicscrape.RecordService.
type RecordService struct {
	CreateRecordFn   func(ctx context.Context, record *clinicscrape.ClinicRecord) error
	FindRecordByIDFn func(ctx context.Context, id string) (*clinicscrape.ClinicRecord, error)
	FindRecordsFn    func(ctx context.Context, filter clinicscrape.RecordFilter) ([]*clinicscrape.ClinicRecord, error)
	DeleteRecordFn   func(ctx context.Context, id string) error
}

func (s *RecordService) CreateRecord(ctx context.Context, record *clinicscrape.ClinicRecord) error {
	return s.CreateRecordFn(ctx, record)
}

func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*clinicscrape.ClinicRecord, error) {
	return s.FindRecordByIDFn(ctx, id)
}

func (s *RecordService) FindRecords(ctx context.Context, filter clinicscrape.RecordFilter) ([]*clinicscrape.ClinicRecord, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	return s.DeleteRecordFn(ctx, id)
}
