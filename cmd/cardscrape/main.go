package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cardscrape"
	"github.com/fwojciec/cardscrape/fs"
	"github.com/fwojciec/cardscrape/goquery"
	"github.com/fwojciec/cardscrape/rod"
	"github.com/fwojciec/cardscrape/scrape"
	cardslog "github.com/fwojciec/cardscrape/slog"
	"github.com/google/uuid"
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
type Main struct {
	// OpenPage launches the browser page. Set before calling Run() to
	// substitute the browser in end-to-end tests.
	OpenPage func(cli *CLI) (cardscrape.Page, error)

	// Now returns the run start time.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		OpenPage: openRodPage,
		Now:      time.Now,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cardscrape"),
		kong.Description("Scrape card prices from every set in the catalog into a JSON file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
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

	logger, closeLog := newLogger(cli, stderr)
	defer closeLog()
	logger = logger.With("run", uuid.NewString())

	// Load the lookup table before launching the browser so a bad table
	// fails fast.
	codes, err := fs.LoadSetCodes(cli.SetCodes)
	if err != nil {
		return err
	}
	logger.Info("set codes loaded", "path", cli.SetCodes, "count", len(codes))

	selectors := goquery.DefaultSelectors()
	if cli.Selectors != "" {
		if selectors, err = goquery.LoadSelectors(cli.Selectors); err != nil {
			return err
		}
	}

	page, err := m.OpenPage(cli)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer page.Close()

	origin := cardscrape.Origin(cli.Origin)
	s := &scrape.Scraper{
		Page:          cardslog.NewLoggingPage(page, logger),
		Catalog:       goquery.NewCatalogExtractor(origin, selectors),
		Cards:         goquery.NewCardExtractor(selectors),
		SetCodes:      codes,
		Writer:        cardslog.NewLoggingArtifactWriter(fs.NewArtifactWriter(cli.Out), logger),
		Origin:        origin,
		ReadySelector: selectors.ReadySelector(),
		SettleDelay:   cli.Settle,
		Now:           m.Now,
	}

	begin := time.Now()
	artifact, err := s.Run(ctx, func(e scrape.ProgressEvent) {
		logger.Debug("progress", "state", e.State, "index", e.Index, "total", e.Total, "url", e.URL)
		if e.State == scrape.StateExtracting {
			fmt.Fprintf(stdout, "%s | %s | scraped\n", e.SetName, e.SetCode)
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "scrape: %s\n", time.Since(begin).Round(time.Millisecond))
	fmt.Fprintf(stdout, "Scrape finished: %d cards written to %s\n", artifact.Records, artifact.Path)
	return nil
}

func openRodPage(cli *CLI) (cardscrape.Page, error) {
	opts := []rod.Option{
		rod.WithHeadless(!cli.Headful),
		rod.WithIgnoreCertErrors(true),
		rod.WithNavigationTimeout(cli.NavTimeout),
		rod.WithReadyTimeout(cli.ReadyTimeout),
	}
	if cli.UserDataDir != "" {
		opts = append(opts, rod.WithUserDataDir(cli.UserDataDir))
	}
	return rod.NewPage(opts...)
}
