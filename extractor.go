package frontpage

import "iter"

// Listing holds the sequences extracted from one fetched front page.
//
// Titles and Scores are lazy, forward-only views bound to the parsed
// document; values are derived per element as the sequence is consumed,
// in document order. TitleCount and MetaCount carry the raw match
// counts so a title/metadata mismatch stays visible to diagnostics even
// though pairing silently truncates to the shorter sequence.
type Listing struct {
	// Titles yields the inner HTML of each title link.
	Titles iter.Seq[string]

	// Scores yields one value per metadata block: the score text, or
	// DefaultScore when the block carries no score marker.
	Scores iter.Seq[string]

	TitleCount int
	MetaCount  int
}

// Extractor extracts titles and scores from front-page HTML.
type Extractor interface {
	// Extract parses the HTML and runs the structural queries against it.
	// Extraction is read-only over the parsed document, so re-running a
	// returned sequence re-derives the same values.
	Extract(html string) (*Listing, error)
}
