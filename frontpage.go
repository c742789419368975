// Package frontpage provides a small CLI tool that fetches the front
// page of a news aggregation site and lists post titles together with
// their scores, extracted from the page HTML with CSS selectors.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, slog/).
package frontpage
