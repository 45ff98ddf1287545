package cmdutil

import (
	"fmt"
	"io"

	"github.com/fastkit/cli/internal/output"
)

// Report is what a generating command prints on success.
type Report struct {
	// Created lists the written paths, printed one per line.
	Created []string

	// Headline follows the checkmark.
	Headline string

	// Details are "key: value" lines printed under the headline.
	Details [][2]string

	// NextSteps are printed as a "Next steps:" block.
	NextSteps []string
}

// WriteReport prints r to w.
func WriteReport(w io.Writer, r Report) {
	for _, p := range r.Created {
		fmt.Fprintf(w, "Created %s\n", output.StyleNoun.Render(p))
	}
	fmt.Fprintf(w, "\n%s\n", output.FormatCheckmark(r.Headline))

	if len(r.Details) > 0 {
		fmt.Fprintln(w)
		for _, d := range r.Details {
			fmt.Fprintf(w, "%s: %s\n", d[0], d[1])
		}
	}

	if len(r.NextSteps) > 0 {
		fmt.Fprintf(w, "\n%s", output.FormatNextSteps(r.NextSteps))
	}
}
