package xlsx_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/clinicscrape"
	"github.com/fwojciec/clinicscrape/fs"
	"github.com/fwojciec/clinicscrape/xlsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	return rows
}

func TestStore_SaveRecords(t *testing.T) {
	t.Parallel()

	t.Run("writes header and records to clinics sheet", func(t *testing.T) {
		t.Parallel()

		// Given a workbook store
		path := filepath.Join(t.TempDir(), "clinics.xlsx")
		store := xlsx.NewStore(path)

		// When records are saved
		err := store.SaveRecords(context.Background(), []*clinicscrape.ClinicRecord{
			{
				Name:      "서울피부과",
				Address:   "서울특별시 강남구 테헤란로 123",
				Services:  []string{"보톡스", "필러"},
				URL:       "https://clinic.example.kr/",
				ScrapedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
			},
		})
		require.NoError(t, err)

		// Then the sheet reads back with the shared columns
		rows := readRows(t, path)
		require.Len(t, rows, 2)
		assert.Equal(t, fs.Columns, rows[0])
		assert.Equal(t, "서울피부과", rows[1][0])
		assert.Equal(t, "보톡스, 필러", rows[1][3])
		assert.Equal(t, "2024-03-01 09:30:00", rows[1][6])
	})

	t.Run("labels lenient addresses as low confidence", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "clinics.xlsx")
		r := &clinicscrape.ClinicRecord{URL: "https://clinic.example.kr/"}
		r.SetAddress(&clinicscrape.AddressCandidate{
			Text:       "강남구 논현로 123",
			Strategy:   clinicscrape.StrategyLenient,
			Confidence: clinicscrape.ConfidenceLow,
		})

		require.NoError(t, xlsx.NewStore(path).SaveRecords(context.Background(), []*clinicscrape.ClinicRecord{r}))

		rows := readRows(t, path)
		require.Len(t, rows, 2)
		require.Len(t, rows[1], len(fs.Columns))
		assert.Equal(t, "lenient", rows[1][7])
		assert.Equal(t, "low", rows[1][8])
	})

	t.Run("writes header only for no records", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "clinics.xlsx")

		require.NoError(t, xlsx.NewStore(path).SaveRecords(context.Background(), nil))

		rows := readRows(t, path)
		require.Len(t, rows, 1)
		assert.Equal(t, fs.Columns, rows[0])
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := xlsx.NewStore(filepath.Join(t.TempDir(), "c.xlsx")).SaveRecords(ctx, nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}
