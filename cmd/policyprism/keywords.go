package main

import (
	"fmt"

	"github.com/fwojciec/policyprism"
)

// Run executes the keywords command.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	path := c.File
	if path == "" {
		path = "-"
	}

	text, err := readInput(path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	keywords := policyprism.HighlightKeywords(text, c.Limit)
	if len(keywords) == 0 {
		fmt.Fprintln(deps.Stdout, "No keywords found.")
		return nil
	}

	for _, keyword := range keywords {
		fmt.Fprintln(deps.Stdout, keyword)
	}

	return nil
}
