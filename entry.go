package frontpage

import (
	"fmt"
	"iter"
)

// FrontPageURL is the default target: the root listing page holding the
// top-ranked entries.
const FrontPageURL = "https://news.ycombinator.com"

// DefaultScore is substituted when a metadata block carries no score
// marker. Promoted entries have no score, so absence is expected and
// not an error.
const DefaultScore = "0 points"

// Entry pairs a post title with its score text.
type Entry struct {
	Title string
	Score string
}

// String renders the entry in the tuple form used by the reporter,
// e.g. ("Post A", "42 points").
func (e Entry) String() string {
	return fmt.Sprintf("(%q, %q)", e.Title, e.Score)
}

// Pairs zips titles and scores positionally into entries. Pairing stops
// at the shorter sequence; no padding, no error on length mismatch.
// Entries without a metadata block (promoted posts) make a mismatch
// normal, which is why the counts on Listing exist. Both inputs are
// consumed single-pass.
func Pairs(titles, scores iter.Seq[string]) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		next, stop := iter.Pull(scores)
		defer stop()
		for title := range titles {
			score, ok := next()
			if !ok {
				return
			}
			if !yield(Entry{Title: title, Score: score}) {
				return
			}
		}
	}
}
