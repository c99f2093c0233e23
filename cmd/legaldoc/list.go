package main

import (
	"fmt"

	"github.com/fwojciec/legaldoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	analyses, err := deps.Analyzer.Recent(deps.Ctx, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", legaldoc.ErrorMessage(err))
		return err
	}

	if len(analyses) == 0 {
		fmt.Fprintln(deps.Stdout, "No analyses found. Use 'legaldoc analyze' to create one.")
		return nil
	}

	for _, a := range analyses {
		fmt.Fprintf(deps.Stdout, "%-30s  %-8s  %2d/%d  %d docs  %s\n",
			a.Domain,
			a.Report.RiskLevel,
			a.Report.ReadabilityScore, legaldoc.MaxReadabilityScore,
			len(a.DocumentsFound),
			a.UpdatedAt.Format("2006-01-02 15:04"),
		)
	}
	return nil
}
