package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/legaldoc"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	result, err := deps.Extractor.ExtractAll(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	written, err := c.export(deps, result.Documents)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(deps.Stdout, "Domain:    %s\n", result.Domain)
	if d := result.Discovery; d != nil {
		fmt.Fprintf(deps.Stdout, "Method:    %s\n", d.Method)
		if d.SeedErr != nil {
			fmt.Fprintf(deps.Stdout, "Seed:      %s\n", d.SeedErr)
		}
		if c.Probes && len(d.Probes) > 0 {
			fmt.Fprintln(deps.Stdout, "Probes:")
			for _, p := range d.Probes {
				line := fmt.Sprintf("  %s %-20s %s", statusMark(p.Status), p.Path, p.Status)
				if p.Reason != "" {
					line += " (" + p.Reason + ")"
				}
				fmt.Fprintln(deps.Stdout, line)
			}
		}
	}

	if result.Empty() {
		fmt.Fprintf(deps.Stdout, "\nNo legal documents found on %s.\n", result.Domain)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents: %d\n\n", len(result.Documents))
	for _, doc := range result.Documents {
		printDocument(deps, doc)
	}
	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "\nWrote %d documents to %s\n", len(written), c.Out)
	}
	return nil
}

// export writes the successfully extracted documents when --out is set.
func (c *ExtractCmd) export(deps *Dependencies, docs []*legaldoc.Document) ([]string, error) {
	if c.Out == "" {
		return nil, nil
	}
	w := deps.NewWriter(c.Out)
	var written []string
	for _, doc := range docs {
		if doc.Failed() {
			continue
		}
		path, err := w.WriteDocument(deps.Ctx, doc)
		if err != nil {
			return written, fmt.Errorf("writing %s: %w", doc.URL, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func printDocument(deps *Dependencies, doc *legaldoc.Document) {
	fmt.Fprintf(deps.Stdout, "  %s [%s] %s\n", statusMark(doc.Status), doc.Type.Label(), doc.Title)
	details := formatChars(runeLen(doc.Content))
	if doc.Language != "" {
		details += ", " + doc.Language
	}
	if doc.Failed() {
		details = doc.Reason
	}
	fmt.Fprintf(deps.Stdout, "      %s (%s)\n", truncateURL(doc.URL, 70), details)
}
