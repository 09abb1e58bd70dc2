package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/helpcenter"
	"github.com/fwojciec/helpcenter/fs"
	"github.com/fwojciec/helpcenter/goquery"
	hchttp "github.com/fwojciec/helpcenter/http"
	"github.com/fwojciec/helpcenter/lipgloss"
	hcslog "github.com/fwojciec/helpcenter/slog"
	"github.com/fwojciec/helpcenter/sqlite"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config overrides LoadConfig when set. Used by end-to-end tests.
	Config *Config

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// IsTerminal reports whether color output is appropriate in auto mode.
	IsTerminal func() bool
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		IsTerminal: func() bool { return isatty.IsTerminal(os.Stdout.Fd()) },
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// storageCommands are the commands that read or write the database.
var storageCommands = map[string]bool{
	"theme":            true,
	"feedback":         true,
	"feedback-summary": true,
	"serve":            true,
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("helpcenter"),
		kong.Description("Search and browse a help-center article catalog"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'helpcenter --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := m.Config
	if cfg == nil {
		if cfg, err = LoadConfig(cli.Config); err != nil {
			return err
		}
	}
	if cli.DB != "" {
		cfg.DBPath = cli.DB
	}
	if cli.Catalog != "" {
		cfg.CatalogPath = cli.Catalog
	}
	deps.Config = cfg

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Renderer = lipgloss.NewRenderer(m.useColor(cli.Color))
	deps.Scanner = goquery.NewScanner()
	deps.Fetcher = hcslog.NewLoggingFetcher(
		hchttp.NewFetcher(hchttp.WithRateLimit(cfg.ScanRPS)),
		deps.Logger,
	)
	defer deps.Fetcher.Close()

	deps.Index, err = loadIndex(cfg.CatalogPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set catalog_path or --catalog to a valid catalog file\n")
		return err
	}

	command := strings.Fields(kongCtx.Command())[0]
	if storageCommands[command] {
		if err := m.openDB(cfg.DBPath); err != nil {
			fmt.Fprintf(stderr, "Hint: Set HELPCENTER_DB to use a different database path\n")
			return err
		}
		defer m.Close()

		prefs := hcslog.NewLoggingPreferenceStore(sqlite.NewPreferenceService(m.DB), deps.Logger)
		deps.Themes = helpcenter.NewThemeService(prefs, cfg.DefaultTheme)
		deps.Feedback = hcslog.NewLoggingFeedbackService(sqlite.NewFeedbackService(m.DB), deps.Logger)
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(path string) error {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return nil
}

func (m *Main) useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return m.IsTerminal != nil && m.IsTerminal()
}

// loadIndex builds the index from the catalog file at path, or from the
// compiled-in catalog when path is empty.
func loadIndex(path string) (*helpcenter.Index, error) {
	if path == "" {
		return helpcenter.NewIndex(helpcenter.DefaultCatalog()), nil
	}
	records, err := fs.LoadCatalog(path)
	if err != nil {
		return nil, err
	}
	return helpcenter.NewIndex(records), nil
}

// reportError prints err to stderr. Application errors print only their
// message.
func reportError(deps *Dependencies, err error) {
	msg := err.Error()
	if helpcenter.ErrorCode(err) != helpcenter.EINTERNAL {
		msg = helpcenter.ErrorMessage(err)
	}
	fmt.Fprintf(deps.Stderr, "error: %s\n", msg)
}
