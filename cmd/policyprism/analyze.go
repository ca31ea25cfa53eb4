package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/policyprism"
	"github.com/fwojciec/policyprism/analyze"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	progress := func(event analyze.ProgressEvent) {
		switch event.Type {
		case analyze.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Analyzing %d document(s)\n", event.Total)
		case analyze.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, policyprism.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Batch.AnalyzeAll(deps.Ctx, c.URLs, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", policyprism.ErrorMessage(err))
		return err
	}

	for i, report := range result.Reports {
		if report == nil {
			continue
		}

		if c.JSON {
			data, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(deps.Stdout, string(data))
		} else {
			printReport(deps, c.URLs[i], report)
		}

		if c.Save {
			analysis := &policyprism.Analysis{
				SourceURL: c.URLs[i],
				Report:    report,
			}
			if err := deps.Analyses.CreateAnalysis(deps.Ctx, analysis); err != nil {
				fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", c.URLs[i], policyprism.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stdout, "Saved analysis %s\n", analysis.ID)
		}
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d document(s) failed", result.Failed, len(c.URLs))
	}

	return nil
}

func printReport(deps *Dependencies, url string, report *policyprism.Report) {
	fmt.Fprintf(deps.Stdout, "\n%s\n", url)

	for _, field := range report.Fields {
		fmt.Fprintf(deps.Stdout, "  %-20s %s\n", field.Label, field.Value)
	}
	for _, highlight := range report.Highlights {
		fmt.Fprintf(deps.Stdout, "  + %s\n", highlight)
	}
	for _, action := range report.Actions {
		fmt.Fprintf(deps.Stdout, "  ! %s\n", action)
	}
	for _, warning := range report.Warnings {
		fmt.Fprintf(deps.Stdout, "  ? %s\n", warning)
	}
}
