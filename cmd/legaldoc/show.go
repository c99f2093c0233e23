package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/legaldoc"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	analysis, err := deps.Analyzer.Lookup(deps.Ctx, c.Domain)
	if err != nil {
		if legaldoc.ErrorCode(err) == legaldoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no analysis for %q. Use 'legaldoc analyze' to create one.\n", c.Domain)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", legaldoc.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	printAnalysis(deps, analysis, c.Full)
	return nil
}
