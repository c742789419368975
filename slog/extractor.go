package slog

import (
	"log/slog"
	"time"

	"github.com/pwalczyk/frontpage"
)

// Ensure LoggingExtractor implements frontpage.Extractor.
var _ frontpage.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging of the match
// counts. A title/metadata count mismatch is normal (promoted entries
// carry no metadata block) but worth surfacing.
type LoggingExtractor struct {
	next   frontpage.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next frontpage.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string) (listing *frontpage.Listing, err error) {
	defer func(begin time.Time) {
		titles, metas := 0, 0
		if listing != nil {
			titles, metas = listing.TitleCount, listing.MetaCount
		}
		e.logger.Info("extract",
			"titles", titles,
			"meta_blocks", metas,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
