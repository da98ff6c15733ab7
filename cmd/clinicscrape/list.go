package main

import (
	"fmt"

	"github.com/fwojciec/clinicscrape"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := clinicscrape.RecordFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clinicscrape.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'clinicscrape scrape --db' to store some.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, clinicscrape.FormatRecords(records))
	return nil
}
