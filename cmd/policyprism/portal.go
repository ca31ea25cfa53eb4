package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fwojciec/policyprism"
)

// Run executes the portal command.
func (c *PortalCmd) Run(deps *Dependencies) error {
	html, err := readInput(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	pctx, err := deps.Scraper.Collect(html, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", policyprism.ErrorMessage(err))
		return err
	}

	var summary *policyprism.PortalSummary
	if c.LLM {
		summary, err = deps.Summarizer.Summarize(deps.Ctx, pctx, nil)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", policyprism.ErrorMessage(err))
			return err
		}
	} else {
		config, err := deps.Config.LoadConfig(deps.Ctx)
		if policyprism.ErrorCode(err) == policyprism.ENOTFOUND {
			config = policyprism.DefaultConfig()
		} else if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", policyprism.ErrorMessage(err))
			return err
		}

		summary = policyprism.BuildPortalSummary(config, pctx, time.Now().UTC())
	}

	if c.JSON {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	fmt.Fprintln(deps.Stdout, summary.Headline)
	fmt.Fprintln(deps.Stdout, summary.Blurb)
	for _, highlight := range summary.Highlights {
		fmt.Fprintf(deps.Stdout, "  + %s\n", highlight)
	}
	for _, exclusion := range summary.Exclusions {
		fmt.Fprintf(deps.Stdout, "  - %s\n", exclusion)
	}
	for _, action := range summary.Actions {
		fmt.Fprintf(deps.Stdout, "  ! %s\n", action)
	}
	for _, doc := range summary.Documents {
		fmt.Fprintf(deps.Stdout, "  %s (%s) %s\n", doc.Name, doc.Type, doc.HRef)
	}

	return nil
}

// readInput reads the file at path, or stdin when path is "-".
func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
