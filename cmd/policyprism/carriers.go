package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/policyprism"
)

// Run executes the carriers command.
func (c *CarriersCmd) Run(deps *Dependencies) error {
	for _, carrier := range policyprism.Carriers() {
		fmt.Fprintf(deps.Stdout, "%-12s %-10s %s\n", carrier.ID, carrier.Label,
			strings.Join(carrier.Domains, ", "))
	}
	return nil
}
