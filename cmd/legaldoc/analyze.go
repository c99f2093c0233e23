package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/legaldoc"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	analysis, err := deps.Analyzer.Analyze(deps.Ctx, c.URL, c.Force)
	if err != nil {
		switch legaldoc.ErrorCode(err) {
		case legaldoc.ENOTFOUND:
			fmt.Fprintf(deps.Stderr, "error: %s\n", legaldoc.ErrorMessage(err))
		case legaldoc.EINTERNAL:
			if analysis != nil {
				fmt.Fprintf(deps.Stderr, "error: analysis failed: %s\n", analysis.ErrorMessage)
			} else {
				fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			}
		default:
			fmt.Fprintf(deps.Stderr, "error: %s\n", legaldoc.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	printAnalysis(deps, analysis, false)
	return nil
}

func printAnalysis(deps *Dependencies, a *legaldoc.Analysis, full bool) {
	fmt.Fprintf(deps.Stdout, "%s\n", a.Domain)
	fmt.Fprintf(deps.Stdout, "Analyzed:     %s\n\n", a.UpdatedAt.Format("2006-01-02 15:04"))
	printReport(deps.Stdout, a.Report)
	if len(a.Documents) > 0 {
		fmt.Fprintf(deps.Stdout, "Documents (%d):\n", len(a.Documents))
		printStoredDocuments(deps.Stdout, a.Documents, full)
	}
}
