package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/clinicscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ clinicscrape.RecordService = (*RecordService)(nil)
	_ clinicscrape.RecordStore   = (*RecordService)(nil)
)

const recordColumns = "id, name, phone, address, address_strategy, address_confidence, services, description, url, content_hash, scraped_at"

// RecordService implements clinicscrape.RecordService using SQLite.
type RecordService struct {
	db  *DB
	now func() time.Time
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db, now: time.Now}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *RecordService) insert(ctx context.Context, ex execer, r *clinicscrape.ClinicRecord) error {
	if err := r.Validate(); err != nil {
		return err
	}

	r.ID = uuid.New().String()
	if r.ScrapedAt.IsZero() {
		r.ScrapedAt = s.now()
	}
	r.ScrapedAt = r.ScrapedAt.UTC().Truncate(time.Second)

	_, err := ex.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Name, r.Phone, r.Address, string(r.AddressStrategy), string(r.AddressConfidence),
		strings.Join(r.Services, "\n"), r.Description, r.URL, r.ContentHash(),
		r.ScrapedAt.Format(time.RFC3339))

	return err
}

// CreateRecord stores a record with a generated ID.
func (s *RecordService) CreateRecord(ctx context.Context, r *clinicscrape.ClinicRecord) error {
	return s.insert(ctx, s.db, r)
}

// SaveRecords stores a batch of records in one transaction.
func (s *RecordService) SaveRecords(ctx context.Context, records []*clinicscrape.ClinicRecord) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, r := range records {
		if err := s.insert(ctx, tx, r); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// FindRecordByID retrieves a record by ID.
func (s *RecordService) FindRecordByID(ctx context.Context, id string) (*clinicscrape.ClinicRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+recordColumns+" FROM records WHERE id = ?", id)

	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, clinicscrape.Errorf(clinicscrape.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter clinicscrape.RecordFilter) ([]*clinicscrape.ClinicRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + recordColumns + " FROM records WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY scraped_at DESC, rowid DESC")

	if filter.Offset > 0 && filter.Limit <= 0 {
		// SQLite requires LIMIT before OFFSET.
		query.WriteString(" LIMIT -1")
	}
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*clinicscrape.ClinicRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// DeleteRecord permanently removes a record.
func (s *RecordService) DeleteRecord(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM records WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return clinicscrape.Errorf(clinicscrape.ENOTFOUND, "record not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (*clinicscrape.ClinicRecord, error) {
	var r clinicscrape.ClinicRecord
	var strategy, confidence, services, contentHash, scrapedAt string

	if err := sc.Scan(&r.ID, &r.Name, &r.Phone, &r.Address, &strategy, &confidence,
		&services, &r.Description, &r.URL, &contentHash, &scrapedAt); err != nil {
		return nil, err
	}

	r.AddressStrategy = clinicscrape.Strategy(strategy)
	r.AddressConfidence = clinicscrape.Confidence(confidence)
	if services != "" {
		r.Services = strings.Split(services, "\n")
	}

	t, err := parseRFC3339(scrapedAt, "scraped_at")
	if err != nil {
		return nil, err
	}
	r.ScrapedAt = t

	return &r, nil
}
