package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfof(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Infof("found %d members", 7)

	assert.Equal(t, "found 7 members\n", buf.String())
}

func TestNilPrinterIsSilent(t *testing.T) {
	var p *Printer

	// None of these should panic or write anywhere.
	p.Infof("ignored %d", 1)
	p.PrintRunSummary("Coffee", "C", 2)
}

func TestPrintRunSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRunSummary("Coffee drinks", "Stub", 2)

	out := buf.String()
	assert.Contains(t, out, "Reassessment candidate search")
	assert.Contains(t, out, "Coffee drinks")
	assert.Contains(t, out, "Stub")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}
