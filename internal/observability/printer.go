// Package observability provides formatted progress output for verbose
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
)

// boxWidth is the width of the run summary box.
const boxWidth = 60

// Printer writes run progress. A nil *Printer is valid and silent, so
// callers can pass one through unconditionally and only construct it when
// verbose output is requested.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Infof writes a single progress line.
func (p *Printer) Infof(format string, args ...any) {
	if p == nil || p.out == nil {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// PrintRunSummary prints a boxed summary of the run parameters.
func (p *Printer) PrintRunSummary(category, target string, minDistance int) {
	if p == nil || p.out == nil {
		return
	}

	content := fmt.Sprintf("Category:  %s\nTarget:    %s\nDistance:  %d",
		category, target, minDistance)
	p.printBox("Reassessment candidate search", content)
}

// printBox prints a formatted box with a title and content.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}
