package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/xhsimport"
	"github.com/fwojciec/xhsimport/fs"
	"github.com/fwojciec/xhsimport/gobreaker"
	"github.com/fwojciec/xhsimport/goquery"
	xhttp "github.com/fwojciec/xhsimport/http"
	"github.com/fwojciec/xhsimport/importer"
	"github.com/fwojciec/xhsimport/rod"
	xslog "github.com/fwojciec/xhsimport/slog"
	"github.com/fwojciec/xhsimport/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// Stdin supplies share text when none is given as an argument.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. Defaults are used when nil.
	Settings   xhsimport.SettingsService
	Fetcher    xhsimport.Fetcher
	Downloader xhsimport.Downloader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("xhsimport"),
		kong.Description("Import Xiaohongshu notes into a Markdown vault"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'xhsimport --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)
	deps.Logger = logger

	if m.Settings == nil {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set XHSIMPORT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		m.Settings = sqlite.NewSettingsService(m.DB)
	}
	deps.Settings = xslog.NewLoggingSettingsService(m.Settings, logger)
	deps.Vault = fs.NewVault(cli.Vault)

	if strings.HasPrefix(kongCtx.Command(), "import") {
		fetcher, err := m.newFetcher(&cli.Import, stderr)
		if err != nil {
			return err
		}
		defer fetcher.Close()

		deps.Importer = m.newImporter(&cli.Import, deps, fetcher)
	}

	return kongCtx.Run(deps)
}

// newFetcher returns the page fetcher selected by the import flags.
func (m *Main) newFetcher(cmd *ImportCmd, stderr io.Writer) (xhsimport.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}
	if !cmd.Browser {
		return xhttp.NewFetcher(xhttp.WithTimeout(cmd.Timeout)), nil
	}

	fetcher, err := rod.NewFetcher(rod.WithFetchTimeout(cmd.Timeout))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return fetcher, nil
}

// newImporter wires an Importer for the import command.
func (m *Main) newImporter(cmd *ImportCmd, deps *Dependencies, fetcher xhsimport.Fetcher) *importer.Importer {
	logger := deps.Logger

	downloader := m.Downloader
	if downloader == nil {
		downloader = xhttp.NewFetcher(xhttp.WithTimeout(cmd.Timeout))
	}

	var limiter xhsimport.DomainLimiter
	if cmd.MediaRate > 0 {
		limiter = importer.NewDomainLimiter(cmd.MediaRate)
	}

	return &importer.Importer{
		Fetcher:   xslog.NewLoggingFetcher(fetcher, logger),
		Extractor: xslog.NewLoggingExtractor(goquery.NewExtractor(logger), logger),
		Media: &importer.Materializer{
			Downloader:  xslog.NewLoggingDownloader(gobreaker.NewDownloader(downloader), logger),
			Files:       deps.Vault,
			RateLimiter: limiter,
			Logger:      logger,
		},
		Files:    deps.Vault,
		Settings: deps.Settings,
		Opener:   &PathOpener{W: deps.Stdout, Vault: deps.Vault},
		Notifier: &WriterNotifier{W: deps.Stderr},
		Logger:   logger,
	}
}

// newLogger returns a text logger writing to w. Only warnings and errors
// are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("XHSIMPORT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "xhsimport.db"
	}
	dir := filepath.Join(home, ".xhsimport")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "xhsimport.db")
}
