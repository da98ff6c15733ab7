package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/clinicscrape"
	"github.com/fwojciec/clinicscrape/crawl"
)

// Scraper scrapes a batch of clinic pages.
type Scraper interface {
	ScrapeAll(ctx context.Context, urls []string, progress crawl.ProgressFunc) ([]*clinicscrape.ClinicRecord, error)
}

// Discoverer finds clinic page URLs on directory pages.
type Discoverer interface {
	Discover(ctx context.Context, directoryURLs []string) ([]string, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Scraper    Scraper
	Discoverer Discoverer

	// Stores receive every scraped batch, in order.
	Stores  []clinicscrape.RecordStore
	Records clinicscrape.RecordService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Delay           time.Duration `default:"2s" env:"CLINICSCRAPE_DELAY" help:"Pause between page requests"`
	Timeout         time.Duration `default:"10s" help:"Per-request timeout"`
	Retries         int           `default:"3" help:"Fetch retries with exponential backoff"`
	MaxContactPages int           `default:"2" help:"Contact pages to follow when no confident address is found"`
	Lenient         bool          `default:"true" negatable:"" help:"Accept unvalidated addresses as low confidence"`
	Browser         bool          `help:"Render pages with headless Chrome"`
	Out             string        `short:"o" default:"clinics.csv" help:"Output file (.csv, .json, .xlsx)"`
	BOM             bool          `name:"bom" help:"Prefix CSV output with a UTF-8 byte order mark"`
	DB              string        `env:"CLINICSCRAPE_DB" help:"SQLite database for stored records"`
	Debug           bool          `help:"Log each address strategy attempt"`

	Scrape    ScrapeCmd    `cmd:"" help:"Scrape clinic pages"`
	Directory DirectoryCmd `cmd:"" help:"Discover clinic pages from directory listings"`
	List      ListCmd      `cmd:"" help:"List records stored in the database"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs []string `arg:"" name:"url" help:"Clinic page URLs"`
}

// DirectoryCmd is the "directory" subcommand.
type DirectoryCmd struct {
	URLs   []string `arg:"" name:"url" help:"Directory page URLs"`
	Scrape bool     `help:"Scrape discovered pages instead of printing them"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL    string `help:"Only records scraped from this URL"`
	Limit  int    `short:"n" default:"20" help:"Maximum records to show"`
	Offset int    `help:"Records to skip"`
}
