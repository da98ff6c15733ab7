package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/clinicscrape"
	"github.com/fwojciec/clinicscrape/crawl"
	"github.com/fwojciec/clinicscrape/fs"
	"github.com/fwojciec/clinicscrape/goquery"
	lochttp "github.com/fwojciec/clinicscrape/http"
	"github.com/fwojciec/clinicscrape/rod"
	clinicslog "github.com/fwojciec/clinicscrape/slog"
	"github.com/fwojciec/clinicscrape/sqlite"
	"github.com/fwojciec/clinicscrape/trafilatura"
	"github.com/fwojciec/clinicscrape/xlsx"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened when --db is set or for the list command.
	DB *sqlite.DB

	// Fetcher overrides the HTTP or browser fetcher. Set before calling Run().
	Fetcher clinicscrape.Fetcher

	closers []io.Closer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var errs []error
	for i := len(m.closers) - 1; i >= 0; i-- {
		errs = append(errs, m.closers[i].Close())
	}
	m.closers = nil
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("clinicscrape"),
		kong.Description("Scrape clinic listings and resolve their street addresses"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'clinicscrape --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	defer m.Close()

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var cmd string
	if node := kongCtx.Selected(); node != nil {
		cmd = node.Name
	}

	if cli.DB != "" || cmd == "list" {
		path := cli.DB
		if path == "" {
			path = defaultDBPath()
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set CLINICSCRAPE_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		m.closers = append(m.closers, m.DB)
		deps.Records = sqlite.NewRecordService(m.DB)
	}

	if cmd == "scrape" || cmd == "directory" {
		fetcher, err := m.fetcher(cli, stderr)
		if err != nil {
			return err
		}
		fetcher = clinicslog.NewLoggingFetcher(fetcher, deps.Logger)

		deps.Discoverer = &crawl.Directory{
			Fetcher:  fetcher,
			Selector: goquery.NewDirectorySelector(),
			Logger:   deps.Logger,
		}
		deps.Scraper = newScraper(cli, fetcher, deps.Logger)

		if err := m.wireStores(cli, deps); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", clinicscrape.ErrorMessage(err))
			return err
		}
	}

	return kongCtx.Run(deps)
}

// fetcher returns the configured page fetcher and registers it for Close.
func (m *Main) fetcher(cli *CLI, stderr io.Writer) (clinicscrape.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	var f clinicscrape.Fetcher
	if cli.Browser {
		rf, err := rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout),
			rod.WithUserAgent(lochttp.DefaultUserAgent),
		)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		f = rf
	} else {
		f = lochttp.NewFetcher(lochttp.WithTimeout(cli.Timeout))
	}
	m.closers = append(m.closers, f)
	return f, nil
}

// wireStores sets the output file store and, when a database is open, the
// database store.
func (m *Main) wireStores(cli *CLI, deps *Dependencies) error {
	if cli.Out != "" {
		store, err := openStore(cli.Out, cli.BOM)
		if err != nil {
			return err
		}
		deps.Stores = append(deps.Stores, clinicslog.NewLoggingRecordStore(store, cli.Out, deps.Logger))
	}
	if m.DB != nil {
		store := sqlite.NewRecordService(m.DB)
		deps.Stores = append(deps.Stores, clinicslog.NewLoggingRecordStore(store, "sqlite", deps.Logger))
	}
	return nil
}

func newScraper(cli *CLI, fetcher clinicscrape.Fetcher, logger *slog.Logger) *crawl.Scraper {
	resolver := clinicslog.NewLoggingResolver(
		goquery.NewResolver(
			goquery.WithLenient(cli.Lenient),
			goquery.WithDebug(cli.Debug),
			goquery.WithLogger(logger),
		),
		logger,
	)

	var contacts *crawl.ContactFollower
	if cli.MaxContactPages > 0 {
		contacts = &crawl.ContactFollower{
			Fetcher:  fetcher,
			Resolver: resolver,
			Selector: goquery.NewContactSelector(),
			MaxPages: cli.MaxContactPages,
			Logger:   logger,
		}
	}

	return &crawl.Scraper{
		Fetcher:     fetcher,
		Resolver:    resolver,
		Listings:    goquery.NewListingExtractor(trafilatura.NewDescriber()),
		Contacts:    contacts,
		Throttle:    crawl.NewThrottle(cli.Delay),
		RetryDelays: retryDelays(cli.Retries),
		Logger:      logger,
	}
}

// openStore picks a file store by the extension of path.
func openStore(path string, bom bool) (clinicscrape.RecordStore, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return fs.NewCSVStore(path, fs.WithBOM(bom)), nil
	case ".json":
		return fs.NewJSONStore(path), nil
	case ".xlsx":
		return xlsx.NewStore(path), nil
	default:
		return nil, clinicscrape.Errorf(clinicscrape.EINVALID, "unsupported output format %q (use .csv, .json or .xlsx)", filepath.Ext(path))
	}
}

// retryDelays returns n exponential backoff delays starting at one second.
func retryDelays(n int) []time.Duration {
	defaults := crawl.DefaultRetryDelays()
	var delays []time.Duration
	for i := 0; i < n; i++ {
		if i < len(defaults) {
			delays = append(delays, defaults[i])
			continue
		}
		delays = append(delays, delays[i-1]*2)
	}
	return delays
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "clinicscrape.db"
	}
	dir := filepath.Join(home, ".clinicscrape")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "clinicscrape.db")
}
