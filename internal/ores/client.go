// Package ores provides a client for the ORES article quality scoring
// service. It batches revision IDs, retries transient failures, and
// validates response bodies before trusting them.
package ores

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBaseURL is the public ORES v2 scores endpoint.
	DefaultBaseURL = "https://ores.wikimedia.org/v2/scores/"

	// DefaultWikiID identifies the English Wikipedia in scoring requests.
	DefaultWikiID = "enwiki"

	// DefaultBatchSize is the number of revisions scored per request.
	DefaultBatchSize = 50

	// DefaultMaxAttempts is the number of tries per batch before giving up.
	DefaultMaxAttempts = 3

	// DefaultRetryDelay is the wait between attempts on the same batch.
	DefaultRetryDelay = 500 * time.Millisecond

	// DefaultParallelism is the number of batch requests in flight at once.
	DefaultParallelism = 4

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second
)

// modelName is the quality model requested from the service.
const modelName = "wp10"

// Static request identification, kept from the original SuggestBot tooling.
const (
	userAgent  = "SuggestBot/1.0"
	fromHeader = "morten@cs.umn.edu"
)

// Prediction is the scoring service's assessment of a single revision:
// the majority-vote class plus a probability per class.
type Prediction struct {
	RevisionID    string
	Rating        string
	Probabilities map[string]float64
}

// PredictionStore maps revision IDs to their predictions. Revisions the
// service could not score are simply absent.
type PredictionStore map[string]Prediction

// Options configures the scoring client. Zero-valued fields fall back to
// the package defaults.
type Options struct {
	BaseURL     string
	WikiID      string
	BatchSize   int
	MaxAttempts int
	RetryDelay  time.Duration
	Parallelism int
	Timeout     time.Duration
	Verbose     bool
}

// DefaultOptions returns the configuration the original tool shipped with.
func DefaultOptions() *Options {
	return &Options{
		BaseURL:     DefaultBaseURL,
		WikiID:      DefaultWikiID,
		BatchSize:   DefaultBatchSize,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
		Parallelism: DefaultParallelism,
		Timeout:     DefaultTimeout,
	}
}

// Client fetches quality predictions from the scoring service.
type Client struct {
	opts   Options
	client *http.Client
}

// NewClient creates a scoring client. A nil opts uses DefaultOptions.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	resolved := *opts
	defaults := DefaultOptions()
	if resolved.BaseURL == "" {
		resolved.BaseURL = defaults.BaseURL
	}
	if resolved.WikiID == "" {
		resolved.WikiID = defaults.WikiID
	}
	if resolved.BatchSize <= 0 {
		resolved.BatchSize = defaults.BatchSize
	}
	if resolved.MaxAttempts <= 0 {
		resolved.MaxAttempts = defaults.MaxAttempts
	}
	if resolved.RetryDelay <= 0 {
		resolved.RetryDelay = defaults.RetryDelay
	}
	if resolved.Parallelism <= 0 {
		resolved.Parallelism = defaults.Parallelism
	}
	if resolved.Timeout <= 0 {
		resolved.Timeout = defaults.Timeout
	}

	return &Client{
		opts:   resolved,
		client: &http.Client{Timeout: resolved.Timeout},
	}
}

// FetchPredictions retrieves quality predictions for the given revision
// IDs. Batches are independent and fan out concurrently; the merged result
// does not depend on completion order. Failures degrade rather than
// propagate: a batch that keeps failing after every attempt contributes no
// entries, and revisions the service did not score are absent from the
// result.
func (c *Client) FetchPredictions(ctx context.Context, revIDs []string) PredictionStore {
	predictions := make(PredictionStore, len(revIDs))
	if len(revIDs) == 0 {
		return predictions
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Parallelism)

	for start := 0; start < len(revIDs); start += c.opts.BatchSize {
		batch := revIDs[start:min(start+c.opts.BatchSize, len(revIDs))]
		g.Go(func() error {
			fetched := c.fetchBatch(ctx, batch)
			mu.Lock()
			for revID, pred := range fetched {
				predictions[revID] = pred
			}
			mu.Unlock()
			return nil
		})
	}

	// Batch goroutines never return errors; exhausted retries just leave
	// gaps in the result.
	_ = g.Wait()
	return predictions
}

// fetchBatch requests scores for one batch, retrying transient failures
// with a fixed delay. A batch that fails every attempt yields nil.
func (c *Client) fetchBatch(ctx context.Context, revIDs []string) PredictionStore {
	url := fmt.Sprintf("%s%s/%s/?revids=%s",
		c.opts.BaseURL, c.opts.WikiID, modelName, strings.Join(revIDs, "|"))

	if c.opts.Verbose {
		log.Printf("ores: requesting predictions for %d revisions", len(revIDs))
	}

	for attempt := 1; attempt <= c.opts.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.opts.RetryDelay):
			}
		}

		predictions, err := c.requestBatch(ctx, url)
		if err == nil {
			return predictions
		}
		log.Printf("ores: batch request failed (attempt %d/%d): %v",
			attempt, c.opts.MaxAttempts, err)
	}

	log.Printf("ores: giving up on batch of %d revisions after %d attempts",
		len(revIDs), c.opts.MaxAttempts)
	return nil
}

// requestBatch performs one HTTP attempt for a batch.
func (c *Client) requestBatch(ctx context.Context, url string) (PredictionStore, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("From", fromHeader)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Message: "failed to read response body", Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return c.parseResponse(body)
}
