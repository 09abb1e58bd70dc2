package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/helpcenter"
	"github.com/fwojciec/helpcenter/lipgloss"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   *Config
	Index    *helpcenter.Index
	Scanner  helpcenter.PageScanner
	Fetcher  helpcenter.Fetcher
	Themes   *helpcenter.ThemeService
	Feedback helpcenter.FeedbackService
	Renderer *lipgloss.Renderer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" env:"HELPCENTER_CONFIG" help:"Path to YAML config file"`
	DB      string `env:"HELPCENTER_DB" help:"Path to SQLite database (overrides db_path)"`
	Catalog string `help:"Path to YAML or JSON article catalog (overrides catalog_path)"`
	Color   string `default:"auto" enum:"auto,always,never" help:"Colorize output (auto, always, never)"`
	Verbose bool   `short:"v" help:"Log debug messages to stderr"`

	Search          SearchCmd          `cmd:"" help:"Search articles by title or category"`
	List            ListCmd            `cmd:"" help:"List articles with filter, search and sort"`
	Scan            ScanCmd            `cmd:"" help:"Harvest article links from rendered pages"`
	TOC             TOCCmd             `cmd:"" name:"toc" help:"Print the table of contents of an article page"`
	Theme           ThemeCmd           `cmd:"" help:"Show or change the color theme"`
	Feedback        FeedbackCmd        `cmd:"" help:"Record whether an article was helpful"`
	FeedbackSummary FeedbackSummaryCmd `cmd:"" help:"Show feedback counts for an article"`
	Export          ExportCmd          `cmd:"" help:"Write the search index as JSON"`
	Serve           ServeCmd           `cmd:"" help:"Serve the JSON API"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string   `arg:"" help:"Search text (at least 2 characters)"`
	All   bool     `short:"a" help:"Return every match instead of the first 8"`
	JSON  bool     `name:"json" help:"Print the outcome as JSON"`
	Scan  []string `short:"s" help:"Build the index from these pages instead of the catalog (repeatable)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Filter   string `short:"f" default:"all" help:"Category filter key"`
	Category string `short:"c" help:"Category slug (overrides --filter)"`
	Search   string `short:"s" help:"Search text"`
	Sort     string `help:"Sort order (title-asc, title-desc, category)"`
	Page     string `short:"p" help:"Listing page whose cards are listed instead of the catalog"`
	Tabs     bool   `help:"Print the category filter tabs instead of articles"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Sources []string `arg:"" help:"Page files or URLs"`
	Cards   bool     `help:"Harvest listing cards instead of article links"`
}

// TOCCmd is the "toc" subcommand.
type TOCCmd struct {
	Source string `arg:"" help:"Article page file or URL"`
}

// ThemeCmd is the "theme" subcommand.
type ThemeCmd struct {
	Get    ThemeGetCmd    `cmd:"" default:"1" help:"Show the current theme"`
	Set    ThemeSetCmd    `cmd:"" help:"Set the theme"`
	Toggle ThemeToggleCmd `cmd:"" help:"Switch between light and dark"`
}

// ThemeGetCmd is the "theme get" subcommand.
type ThemeGetCmd struct{}

// ThemeSetCmd is the "theme set" subcommand.
type ThemeSetCmd struct {
	Theme string `arg:"" enum:"light,dark" help:"Theme (light or dark)"`
}

// ThemeToggleCmd is the "theme toggle" subcommand.
type ThemeToggleCmd struct{}

// FeedbackCmd is the "feedback" subcommand.
type FeedbackCmd struct {
	Reference string `arg:"" help:"Article reference"`
	Answer    string `arg:"" enum:"yes,no" help:"Was the article helpful (yes or no)"`
	Comment   string `short:"m" help:"Optional comment"`
}

// FeedbackSummaryCmd is the "feedback-summary" subcommand.
type FeedbackSummaryCmd struct {
	Reference string `arg:"" help:"Article reference"`
	Comments  int    `default:"0" help:"Also show this many recent comments"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Path string   `arg:"" help:"Output JSON file"`
	Scan []string `short:"s" help:"Build the index from these pages instead of the catalog (repeatable)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr            string `help:"Listen address (overrides listen_addr)"`
	AllowAllOrigins bool   `help:"Allow cross-origin requests from any origin"`
}
