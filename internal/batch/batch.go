// Package batch validates many content files and summarizes the results.
package batch

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/ecocritic/internal/content"
	"github.com/dshills/ecocritic/internal/schema"
	"github.com/dshills/ecocritic/internal/taxonomy"
)

// DefaultConcurrency bounds parallel validation when none is configured.
const DefaultConcurrency = 4

// Validator is the subset of the content validator a batch needs.
type Validator interface {
	Validate(c *schema.Content) *schema.ValidationResult
}

// Item is the outcome for one file. Exactly one of Result and Error is set.
type Item struct {
	Path   string                   `json:"path"`
	Hash   string                   `json:"hash,omitempty"`
	Result *schema.ValidationResult `json:"result,omitempty"`
	Error  string                   `json:"error,omitempty"`
}

// Summary aggregates a batch.
type Summary struct {
	RunID        string                          `json:"run_id"`
	StartedAt    time.Time                       `json:"started_at"`
	Total        int                             `json:"total"`
	Valid        int                             `json:"valid"`
	Invalid      int                             `json:"invalid"`
	LoadErrors   int                             `json:"load_errors"`
	MeanScore    float64                         `json:"mean_score"`
	CoveredTasks map[taxonomy.DomainKey][]string `json:"covered_tasks"`
}

// Report is a batch result: the summary plus one item per input, in input
// order.
type Report struct {
	Tool    string  `json:"tool"`
	Version string  `json:"version"`
	Summary Summary `json:"summary"`
	Items   []Item  `json:"items"`
}

// Runner validates files with bounded concurrency.
type Runner struct {
	validator   Validator
	concurrency int
	loadOpts    content.Options
	logger      *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithConcurrency sets the maximum number of files validated at once.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithLoadOptions sets how content files are parsed.
func WithLoadOptions(opts content.Options) RunnerOption {
	return func(r *Runner) {
		r.loadOpts = opts
	}
}

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner returns a Runner that validates with v.
func NewRunner(v Validator, opts ...RunnerOption) *Runner {
	r := &Runner{validator: v, concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run loads and validates every path. A file that cannot be loaded is
// recorded on its Item and does not stop the batch; only cancellation of ctx
// returns an error.
func (r *Runner) Run(ctx context.Context, paths []string) (*Report, error) {
	started := time.Now().UTC()
	items := make([]Item, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items[i] = r.one(p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		Summary: summarize(items, started),
		Items:   items,
	}, nil
}

func (r *Runner) one(path string) Item {
	item := Item{Path: path}
	doc, err := content.Load(path, r.loadOpts)
	if err != nil {
		r.logger.Warn("skipping content file", "path", path, "error", err)
		item.Error = err.Error()
		return item
	}
	item.Hash = doc.Hash
	item.Result = r.validator.Validate(doc.Content)
	r.logger.Debug("validated file", "path", path, "score", item.Result.Score, "valid", item.Result.IsValid)
	return item
}

func summarize(items []Item, started time.Time) Summary {
	s := Summary{
		RunID:        uuid.NewString(),
		StartedAt:    started,
		Total:        len(items),
		CoveredTasks: map[taxonomy.DomainKey][]string{},
	}
	union := map[taxonomy.DomainKey]map[string]bool{}
	scored := 0
	sum := 0.0

	for _, it := range items {
		if it.Result == nil {
			s.LoadErrors++
			continue
		}
		scored++
		sum += it.Result.Score
		if it.Result.IsValid {
			s.Valid++
		} else {
			s.Invalid++
		}
		for key, ids := range it.Result.Details.ExtractedTasks {
			if union[key] == nil {
				union[key] = map[string]bool{}
			}
			for _, id := range ids {
				union[key][id] = true
			}
		}
	}
	if scored > 0 {
		s.MeanScore = sum / float64(scored)
	}

	for _, key := range taxonomy.DomainOrder {
		ids := make([]string, 0, len(union[key]))
		for id := range union[key] {
			ids = append(ids, id)
		}
		sortTaskIDs(ids)
		s.CoveredTasks[key] = ids
	}
	return s
}

// sortTaskIDs orders IDs numerically (T2 before T10).
func sortTaskIDs(ids []string) {
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) < len(ids[j])
		}
		return ids[i] < ids[j]
	})
}
