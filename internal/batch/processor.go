package batch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nao1215/pwtool/internal/model"
)

// DefaultConcurrency is used when no positive concurrency is configured.
const DefaultConcurrency = 4

// Analyzer analyzes a single password.
// *strength.Analyzer satisfies this interface.
type Analyzer interface {
	Analyze(password string) (*model.AnalysisResult, error)
}

// Processor handles concurrent analysis of a password list.
// It uses errgroup to manage goroutines and respect concurrency limits.
type Processor struct {
	// analyzer is shared by all goroutines and must be safe for concurrent use.
	analyzer Analyzer

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger
}

// batchResults holds the items of one Process call in input order.
// Access is synchronized via mutex.
type batchResults struct {
	items []model.BatchItem
	mu    sync.Mutex
}

// Option configures a Processor.
type Option func(*Processor)

// WithLogger sets a custom logger for batch processing.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Non-positive values keep the default.
func WithConcurrency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// NewProcessor creates a new Processor.
func NewProcessor(analyzer Analyzer, opts ...Option) *Processor {
	p := &Processor{
		analyzer:    analyzer,
		concurrency: DefaultConcurrency,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Process analyzes every entry and returns one item per entry, in input order.
// It is safe to call Process concurrently on the same Processor.
//
// Per-entry failures are stored in the item's Error field and do not stop
// other entries. The returned error is non-nil only when ctx is canceled;
// entries that never ran then carry the cancellation error.
func (p *Processor) Process(ctx context.Context, entries []Entry) ([]model.BatchItem, error) {
	p.logger.Debug("starting batch analysis",
		"total_entries", len(entries),
		"concurrency", p.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain order
	results := &batchResults{items: make([]model.BatchItem, len(entries))}
	for i, e := range entries {
		results.items[i] = model.BatchItem{Label: e.Label()}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, entry := range entries {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results.store(i, nil, gctx.Err())
				return gctx.Err()
			default:
			}

			result, err := p.analyzer.Analyze(entry.Password)
			results.store(i, result, err)
			if err != nil {
				p.logger.Debug("entry failed",
					"entry", entry.Label(),
					"error", err,
				)
			}

			return nil
		})
	}

	err := g.Wait()

	p.logger.Debug("batch analysis complete",
		"total_entries", len(entries),
		"elapsed", time.Since(startTime),
	)

	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		results.fillCanceled(err)
	}

	return results.items, err
}

// store records the outcome of entry i.
func (r *batchResults) store(i int, result *model.AnalysisResult, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.items[i].Error = err.Error()
		return
	}
	r.items[i].Result = result
}

// fillCanceled marks entries that never ran.
func (r *batchResults) fillCanceled(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].Result == nil && r.items[i].Error == "" {
			r.items[i].Error = err.Error()
		}
	}
}
