package main

import (
	"context"
	"io"

	"github.com/fwojciec/policyprism"
	"github.com/fwojciec/policyprism/analyze"
	"github.com/fwojciec/policyprism/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	DB         *sqlite.DB
	Config     policyprism.ConfigService
	Analyses   policyprism.AnalysisService
	Batch      *analyze.Batch
	Scraper    policyprism.PortalScraper
	Summarizer policyprism.Summarizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Analyze  AnalyzeCmd  `cmd:"" help:"Extract policy facts from document URLs"`
	Portal   PortalCmd   `cmd:"" help:"Summarise a carrier portal page"`
	Keywords KeywordsCmd `cmd:"" help:"Rank keywords in policy text"`
	Carriers CarriersCmd `cmd:"" help:"List supported carriers"`
	Config   ConfigCmd   `cmd:"" help:"Show or update the extension configuration"`
	History  HistoryCmd  `cmd:"" help:"List stored analyses"`
	Delete   DeleteCmd   `cmd:"" help:"Delete a stored analysis"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URLs        []string `arg:"" help:"Document URLs to analyze"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64  `short:"r" default:"1" help:"Requests per second per domain"`
	Save        bool     `short:"s" help:"Store reports in the analysis history"`
	JSON        bool     `help:"Print reports as JSON"`
}

// PortalCmd is the "portal" subcommand.
type PortalCmd struct {
	File string `arg:"" help:"Portal page HTML file (use - for stdin)"`
	URL  string `arg:"" help:"Portal page URL"`
	LLM  bool   `help:"Generate the summary with Gemini instead of the offline preview"`
	JSON bool   `help:"Print the summary as JSON"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct {
	File  string `arg:"" optional:"" help:"Text file to rank (defaults to stdin)"`
	Limit int    `short:"n" default:"5" help:"Number of keywords to show"`
}

// CarriersCmd is the "carriers" subcommand.
type CarriersCmd struct{}

// ConfigCmd is the "config" subcommand.
type ConfigCmd struct {
	Enable   bool     `help:"Enable the extension" xor:"toggle"`
	Disable  bool     `help:"Disable the extension" xor:"toggle"`
	Carriers []string `help:"Restrict to the given carrier IDs (repeatable)"`
	AutoRun  *bool    `name:"auto-run" help:"Toggle automatic analysis on portal pages"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL   string `help:"Filter by source URL"`
	Limit int    `short:"n" default:"20" help:"Maximum number of analyses to show"`
	Full  bool   `help:"Show full report JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Analysis ID"`
}
