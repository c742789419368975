package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/pwalczyk/frontpage"
	fpgoquery "github.com/pwalczyk/frontpage/goquery"
	fphttp "github.com/pwalczyk/frontpage/http"
	fpslog "github.com/pwalczyk/frontpage/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("frontpage"),
		kong.Description("Fetch the front page of Hacker News and list post titles with scores"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"frontpage_url": frontpage.FrontPageURL},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	logger = logger.With("run_id", uuid.NewString())

	// Wire dependencies
	opts := []fphttp.Option{fphttp.WithTimeout(cli.Timeout)}
	if cli.Proxy != "" {
		opts = append(opts, fphttp.WithProxy(cli.Proxy))
	}

	httpFetcher, err := fphttp.NewFetcher(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", frontpage.ErrorMessage(err))
		return err
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Fetcher:   fpslog.NewLoggingFetcher(httpFetcher, logger),
		Extractor: fpslog.NewLoggingExtractor(fpgoquery.NewExtractor(), logger),
	}
	defer deps.Fetcher.Close()

	cmd := &ListCmd{
		URL:   cli.URL,
		Limit: cli.Limit,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Proxy   string        `help:"Forward proxy URL applied to both HTTP and HTTPS requests"`
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	Limit   int           `short:"n" default:"0" help:"Print at most this many entries (0 = all)"`
	Verbose bool          `short:"v" help:"Enable debug logging to stderr"`
	URL     string        `arg:"" optional:"" default:"${frontpage_url}" help:"Front page URL to fetch"`
}
