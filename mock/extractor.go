package mock

import "github.com/pwalczyk/frontpage"

var _ frontpage.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of frontpage.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*frontpage.Listing, error)
}

func (e *Extractor) Extract(html string) (*frontpage.Listing, error) {
	return e.ExtractFn(html)
}
