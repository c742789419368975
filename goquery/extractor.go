// Package goquery provides a CSS-selector-based implementation of
// frontpage.Extractor.
package goquery

import (
	"iter"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/pwalczyk/frontpage"
	"golang.org/x/net/html"
)

// The three structural queries, compiled once at package load.
// MustCompile panics on a malformed selector; with fixed query strings
// that is a programming error, not a runtime condition.
var (
	titleMatcher = cascadia.MustCompile("span.titleline > a")
	metaMatcher  = cascadia.MustCompile("td.subtext")
	scoreMatcher = cascadia.MustCompile("span.score")
)

// Ensure Extractor implements frontpage.Extractor at compile time.
var _ frontpage.Extractor = (*Extractor)(nil)

// Extractor extracts front-page titles and scores using CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the HTML and returns a listing whose sequences stay
// bound to the parsed document. The title and metadata queries run
// eagerly to establish the match sets; per-element text derivation is
// deferred until the sequences are consumed.
func (e *Extractor) Extract(htmlText string) (*frontpage.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, frontpage.Errorf(frontpage.EINVALID, "failed to parse HTML: %v", err)
	}

	titles := doc.FindMatcher(titleMatcher)
	metas := doc.FindMatcher(metaMatcher)

	return &frontpage.Listing{
		Titles:     titleSeq(titles),
		Scores:     scoreSeq(metas),
		TitleCount: titles.Length(),
		MetaCount:  metas.Length(),
	}, nil
}

// titleSeq yields the inner HTML of each matched title link in
// document order.
func titleSeq(sel *goquery.Selection) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range sel.Nodes {
			if !yield(innerHTML(n)) {
				return
			}
		}
	}
}

// scoreSeq yields one value per metadata block: the first text token of
// the block's score marker, or frontpage.DefaultScore when the block
// has none.
func scoreSeq(sel *goquery.Selection) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, n := range sel.Nodes {
			score := frontpage.DefaultScore
			if m := scoreMatcher.MatchFirst(n); m != nil {
				if text := firstText(m); text != "" {
					score = text
				}
			}
			if !yield(score) {
				return
			}
		}
	}
}

// innerHTML renders the markup inside n.
func innerHTML(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&sb, c)
	}
	return sb.String()
}

// firstText returns the first non-empty text token under n in
// depth-first order, or "" when n contains no text.
func firstText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text := firstText(c); text != "" {
			return text
		}
	}
	return ""
}
