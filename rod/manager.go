package rod

import (
	"errors"
	"fmt"
	"sync"

	"github.com/fwojciec/clinicscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of pages served by one browser
// before it is replaced.
const DefaultMaxPages = 75

// BrowserManager hands out a shared headless Chrome and replaces it after
// maxPages pages, since Chrome's memory baseline only grows over a long run.
// A replaced browser is shut down once its last page is released.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	mu       sync.Mutex
	current  *generation
	maxPages int64
	closed   bool
}

// generation is one launched browser process.
type generation struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	served   int64
	inflight int
	retired  bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the number of pages served before the browser is
// replaced. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// NewBrowserManager launches a headless Chrome. Close must be called when
// the manager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(bm)
	}

	g, err := launch()
	if err != nil {
		return nil, err
	}
	bm.current = g
	return bm, nil
}

// Acquire returns the browser to open one page in and a release func that
// must be called when the page is closed.
func (bm *BrowserManager) Acquire() (*rod.Browser, func(), error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil, nil, clinicscrape.Errorf(clinicscrape.EINVALID, "browser closed")
	}

	if bm.maxPages > 0 && bm.current.served >= bm.maxPages {
		// On launch failure the old browser keeps serving.
		if next, err := launch(); err == nil {
			bm.retire(bm.current)
			bm.current = next
		}
	}

	g := bm.current
	g.served++
	g.inflight++
	var once sync.Once
	return g.browser, func() { once.Do(func() { bm.release(g) }) }, nil
}

// Close shuts down the current browser once its pages are released.
// Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.closed {
		return nil
	}
	bm.closed = true
	return bm.retire(bm.current)
}

// Served returns the number of pages handed out by the current browser.
func (bm *BrowserManager) Served() int64 {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	return bm.current.served
}

func (bm *BrowserManager) release(g *generation) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	g.inflight--
	if g.retired && g.inflight == 0 {
		_ = g.shutdown()
	}
}

// retire marks g for shutdown. Must be called with mu held.
func (bm *BrowserManager) retire(g *generation) error {
	g.retired = true
	if g.inflight == 0 {
		return g.shutdown()
	}
	return nil
}

// launch starts a browser with flags that keep background tabs responsive.
func launch() (*generation, error) {
	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &generation{browser: browser, launcher: l}, nil
}

func (g *generation) shutdown() error {
	var errs []error
	if g.browser != nil {
		errs = append(errs, g.browser.Close())
		g.browser = nil
	}
	if g.launcher != nil {
		g.launcher.Kill()
		g.launcher = nil
	}
	return errors.Join(errs...)
}
