package main

import (
	"fmt"

	"github.com/fwojciec/legaldoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return legaldoc.Errorf(legaldoc.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Analyses.DeleteAnalysis(deps.Ctx, c.Domain); err != nil {
		if legaldoc.ErrorCode(err) == legaldoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no analysis for %q. Use 'legaldoc list' to see stored analyses.\n", c.Domain)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", legaldoc.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted analysis of %q\n", c.Domain)
	return nil
}
