// Package assess ranks category members whose predicted quality class
// sits sufficiently below a target class.
package assess

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/suggestbot/assesscat/internal/observability"
	"github.com/suggestbot/assesscat/internal/ores"
	"github.com/suggestbot/assesscat/internal/wp10"
)

// MembershipResolver enumerates category members and resolves titles to
// their current revision.
type MembershipResolver interface {
	MembersOf(ctx context.Context, category string) ([]string, error)
	LatestRevision(ctx context.Context, title string) (revID string, found bool, err error)
}

// Scorer fetches quality predictions for a set of revisions.
type Scorer interface {
	FetchPredictions(ctx context.Context, revIDs []string) ores.PredictionStore
}

// Candidate is a category member predicted far enough below the target
// class to warrant reassessment.
type Candidate struct {
	Title      string
	Prediction ores.Prediction

	// ProbabilityAboveTarget is the summed probability of every class
	// strictly better than the target.
	ProbabilityAboveTarget float64
}

// Ranker orchestrates membership resolution and scoring into a ranked
// candidate list.
type Ranker struct {
	resolver MembershipResolver
	scorer   Scorer
	progress *observability.Printer
}

// NewRanker creates a Ranker. progress may be nil.
func NewRanker(resolver MembershipResolver, scorer Scorer, progress *observability.Printer) *Ranker {
	return &Ranker{resolver: resolver, scorer: scorer, progress: progress}
}

// Rank returns the members of category whose predicted class is at least
// minDistance classes worse than target, ordered by the probability that
// the article in fact exceeds the target, highest first. An unreachable
// resolver is fatal; missing predictions and unknown returned ratings
// only shrink the result.
func (r *Ranker) Rank(ctx context.Context, category, target string, minDistance int) ([]Candidate, error) {
	targetIdx, err := wp10.Index(target)
	if err != nil {
		return nil, err
	}
	if minDistance < 0 {
		return nil, fmt.Errorf("minimum distance must be non-negative, got %d", minDistance)
	}

	titles, err := r.resolver.MembersOf(ctx, category)
	if err != nil {
		return nil, err
	}
	r.progress.Infof("found %d members of the category", len(titles))

	// Collapse duplicate titles (an article and its talk page are both
	// members) and fix iteration order so ties in the final sort come out
	// the same on every run.
	seen := make(map[string]struct{}, len(titles))
	ordered := make([]string, 0, len(titles))
	for _, title := range titles {
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		ordered = append(ordered, title)
	}
	sort.Strings(ordered)

	// Resolve each title to its current revision. Titles without one
	// (redirects, deletions) drop out here.
	type pageRevision struct {
		title string
		revID string
	}
	pages := make([]pageRevision, 0, len(ordered))
	for _, title := range ordered {
		revID, found, err := r.resolver.LatestRevision(ctx, title)
		if err != nil {
			return nil, err
		}
		if !found {
			log.Printf("assess: could not find a latest revision for %s", title)
			continue
		}
		pages = append(pages, pageRevision{title: title, revID: revID})
	}
	r.progress.Infof("resolved %d titles to revisions", len(pages))

	revIDs := make([]string, 0, len(pages))
	seenRev := make(map[string]struct{}, len(pages))
	for _, page := range pages {
		if _, ok := seenRev[page.revID]; ok {
			continue
		}
		seenRev[page.revID] = struct{}{}
		revIDs = append(revIDs, page.revID)
	}

	predictions := r.scorer.FetchPredictions(ctx, revIDs)
	r.progress.Infof("received predictions for %d of %d revisions", len(predictions), len(revIDs))

	better := wp10.Classes()[:targetIdx]
	candidates := make([]Candidate, 0)
	for _, page := range pages {
		prediction, ok := predictions[page.revID]
		if !ok {
			// Not scored; expected for revisions the service has not seen.
			continue
		}

		distance, err := wp10.Distance(prediction.Rating, target)
		if err != nil {
			log.Printf("assess: skipping %s: %v", page.title, err)
			continue
		}
		if distance < minDistance {
			continue
		}

		var above float64
		for _, class := range better {
			above += prediction.Probabilities[class]
		}
		candidates = append(candidates, Candidate{
			Title:                  page.title,
			Prediction:             prediction,
			ProbabilityAboveTarget: above,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ProbabilityAboveTarget > candidates[j].ProbabilityAboveTarget
	})
	return candidates, nil
}
