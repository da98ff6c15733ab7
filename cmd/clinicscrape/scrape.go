package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/clinicscrape"
	"github.com/fwojciec/clinicscrape/crawl"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	return scrapeAndSave(deps, c.URLs)
}

// scrapeAndSave scrapes urls and writes the records to every store. Records
// gathered before a cancellation are still saved.
func scrapeAndSave(deps *Dependencies, urls []string) error {
	progress := func(p crawl.Progress) {
		switch {
		case p.Error != nil:
			fmt.Fprintf(deps.Stderr, "[%d/%d] skip %s: %v\n", p.Completed, p.Total, p.URL, p.Error)
		case p.Record.Address == "":
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: no address\n", p.Completed, p.Total, p.URL)
		case p.Record.AddressConfidence == clinicscrape.ConfidenceLow:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s (low confidence)\n", p.Completed, p.Total, p.URL, p.Record.Address)
		default:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", p.Completed, p.Total, p.URL, p.Record.Address)
		}
	}

	records, scrapeErr := deps.Scraper.ScrapeAll(deps.Ctx, urls, progress)

	saveCtx := context.WithoutCancel(deps.Ctx)
	for _, store := range deps.Stores {
		if err := store.SaveRecords(saveCtx, records); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", clinicscrape.ErrorMessage(err))
			return err
		}
	}

	if scrapeErr != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", scrapeErr)
		return scrapeErr
	}

	var withAddress int
	for _, r := range records {
		if r.Address != "" {
			withAddress++
		}
	}
	fmt.Fprintf(deps.Stdout, "Scraped %d pages, %d with address\n", len(records), withAddress)
	return nil
}
