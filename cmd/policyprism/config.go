package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/policyprism"
)

// Run executes the config command.
func (c *ConfigCmd) Run(deps *Dependencies) error {
	upd := policyprism.ConfigUpdate{}
	if c.Enable {
		enabled := true
		upd.Enabled = &enabled
	}
	if c.Disable {
		enabled := false
		upd.Enabled = &enabled
	}
	if len(c.Carriers) > 0 {
		upd.Carriers = &c.Carriers
	}
	if c.AutoRun != nil {
		upd.AutoRun = c.AutoRun
	}

	var config *policyprism.Config
	var err error

	if upd.Enabled != nil || upd.Carriers != nil || upd.AutoRun != nil {
		config, err = deps.Config.UpdateConfig(deps.Ctx, upd)
	} else {
		config, err = deps.Config.LoadConfig(deps.Ctx)
		if policyprism.ErrorCode(err) == policyprism.ENOTFOUND {
			config, err = policyprism.DefaultConfig(), nil
		}
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", policyprism.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "enabled:  %t\n", config.Enabled)
	fmt.Fprintf(deps.Stdout, "auto-run: %t\n", config.AutoRun)
	fmt.Fprintf(deps.Stdout, "carriers: %s\n", strings.Join(config.Carriers, ", "))
	if !config.UpdatedAt.IsZero() {
		fmt.Fprintf(deps.Stdout, "updated:  %s\n", config.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	return nil
}
