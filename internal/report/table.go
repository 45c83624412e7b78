// Package report renders ranked assessment candidates as a wikitext table.
package report

import (
	"fmt"
	"strings"

	"github.com/suggestbot/assesscat/internal/assess"
)

// Table renders the candidates as a wikitext table in the order the ranker
// produced them. Underscores in titles render as spaces and probabilities
// as percentages with one decimal place. There are no error paths: an
// empty candidate list yields a table with only the header.
func Table(candidates []assess.Candidate, target string) string {
	var sb strings.Builder

	sb.WriteString("{|\n")
	sb.WriteString("!  Title\n")
	sb.WriteString("!  Predicted class\n")
	fmt.Fprintf(&sb, "!  P(> %s)", target)

	for _, candidate := range candidates {
		title := strings.ReplaceAll(candidate.Title, "_", " ")
		fmt.Fprintf(&sb, "\n|-\n| [[%s]] || %s || %.1f",
			title, candidate.Prediction.Rating, 100*candidate.ProbabilityAboveTarget)
	}

	sb.WriteString("\n|}")
	return sb.String()
}
