// Package fs writes clinic records to flat files.
package fs

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/clinicscrape"
)

// TimeLayout formats ScrapedAt in tabular exports.
const TimeLayout = "2006-01-02 15:04:05"

// ServiceSeparator joins services into a single tabular cell.
const ServiceSeparator = ", "

// Columns is the header row shared by tabular exports. The address
// strategy and confidence follow the record fields so a lenient, unvalidated
// address stays distinguishable from a validated one.
var Columns = []string{
	"name", "phone", "address", "services", "description", "url", "scraped_at",
	"address_strategy", "address_confidence",
}

// Row flattens a record into Columns order.
func Row(r *clinicscrape.ClinicRecord) []string {
	var scrapedAt string
	if !r.ScrapedAt.IsZero() {
		scrapedAt = r.ScrapedAt.Format(TimeLayout)
	}
	return []string{
		r.Name,
		r.Phone,
		r.Address,
		strings.Join(r.Services, ServiceSeparator),
		r.Description,
		r.URL,
		scrapedAt,
		string(r.AddressStrategy),
		string(r.AddressConfidence),
	}
}

// WriteAtomic writes to path.tmp and renames it over path once write
// returns. The temp file is removed on failure.
func WriteAtomic(path string, write func(w io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = write(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
