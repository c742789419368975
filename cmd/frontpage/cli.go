package main

import (
	"context"
	"io"

	"github.com/pwalczyk/frontpage"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   frontpage.Fetcher
	Extractor frontpage.Extractor
}

// ListCmd fetches the front page and prints title/score pairs.
type ListCmd struct {
	URL   string
	Limit int
}
