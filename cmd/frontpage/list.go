package main

import (
	"fmt"

	"github.com/pwalczyk/frontpage"
)

// Run executes the list command: fetch, extract, report. Any fetch or
// parse failure aborts before a single pair is written.
func (c *ListCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", frontpage.ErrorMessage(err))
		return err
	}

	listing, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", frontpage.ErrorMessage(err))
		return err
	}

	printed := 0
	for entry := range frontpage.Pairs(listing.Titles, listing.Scores) {
		if c.Limit > 0 && printed >= c.Limit {
			break
		}
		fmt.Fprintln(deps.Stdout, entry)
		printed++
	}

	return nil
}
