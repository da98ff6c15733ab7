package main

import (
	"fmt"

	"github.com/fwojciec/clinicscrape"
)

// Run executes the directory command.
func (c *DirectoryCmd) Run(deps *Dependencies) error {
	urls, err := deps.Discoverer.Discover(deps.Ctx, c.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clinicscrape.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "No clinic pages found.")
		return nil
	}

	if !c.Scrape {
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	fmt.Fprintf(deps.Stderr, "Found %d clinic pages\n", len(urls))
	return scrapeAndSave(deps, urls)
}
