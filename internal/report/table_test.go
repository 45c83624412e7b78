package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suggestbot/assesscat/internal/assess"
	"github.com/suggestbot/assesscat/internal/ores"
)

func candidate(title, rating string, above float64) assess.Candidate {
	return assess.Candidate{
		Title:                  title,
		Prediction:             ores.Prediction{Rating: rating},
		ProbabilityAboveTarget: above,
	}
}

func TestTable_SingleRow(t *testing.T) {
	got := Table([]assess.Candidate{candidate("A", "Stub", 0.08)}, "C")

	want := "{|\n" +
		"!  Title\n" +
		"!  Predicted class\n" +
		"!  P(> C)\n" +
		"|-\n" +
		"| [[A]] || Stub || 8.0\n" +
		"|}"
	assert.Equal(t, want, got)
}

func TestTable_UnderscoresRenderAsSpaces(t *testing.T) {
	got := Table([]assess.Candidate{candidate("Glenn_Gould", "Start", 0.345)}, "GA")

	assert.Contains(t, got, "[[Glenn Gould]]")
	assert.NotContains(t, got, "Glenn_Gould")
	assert.Contains(t, got, "34.5")
}

func TestTable_PreservesCandidateOrder(t *testing.T) {
	got := Table([]assess.Candidate{
		candidate("First", "Stub", 0.9),
		candidate("Second", "Start", 0.5),
	}, "B")

	first := strings.Index(got, "First")
	second := strings.Index(got, "Second")
	assert.Less(t, first, second)
}

func TestTable_Empty(t *testing.T) {
	got := Table(nil, "C")

	want := "{|\n" +
		"!  Title\n" +
		"!  Predicted class\n" +
		"!  P(> C)\n" +
		"|}"
	assert.Equal(t, want, got)
}
