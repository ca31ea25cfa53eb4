package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/policyprism"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := policyprism.AnalysisFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	analyses, err := deps.Analyses.FindAnalyses(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", policyprism.ErrorMessage(err))
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses found. Use 'policyprism analyze --save' to store one.")
		return nil
	}

	for _, analysis := range analyses {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", analysis.ID,
			analysis.CreatedAt.Format("2006-01-02 15:04"), analysis.SourceURL)

		if c.Full {
			data, err := json.MarshalIndent(analysis.Report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(deps.Stdout, string(data))
		}
	}

	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Analyses.DeleteAnalysis(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", policyprism.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted analysis %s\n", c.ID)
	return nil
}
