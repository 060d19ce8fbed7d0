package classify

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/catalog"
	"github.com/bgabrovsek/classification-bonded-knots-sub001/pkg/observability"
)

// Runner executes classification runs against one catalog store.
//
// The Runner is stateless except for the store and logger - it doesn't
// keep run results. Multiple goroutines can safely share a Runner as
// long as the store supports it.
type Runner struct {
	Store  catalog.Store
	Logger *log.Logger
}

// NewRunner creates a runner over the given store.
// If store is nil, an in-memory store is used.
// If logger is nil, the default logger is used.
func NewRunner(store catalog.Store, logger *log.Logger) *Runner {
	if store == nil {
		store = catalog.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Store: store, Logger: logger}
}

// Execute classifies every input: each diagram is canonicalized, digested
// and offered to the catalog, which keeps the first record per canonical
// form. Diagrams that cannot be canonicalized are counted as failed and
// skipped; store errors abort the run.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	logger := r.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	result := &Result{RunID: runID}
	result.Stats.Total = len(opts.Inputs)

	start := time.Now()
	observability.Classifier().OnRunStart(ctx, runID, len(opts.Inputs))

	for _, in := range opts.Inputs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("classify run %s: %w", runID, err)
		}

		canonStart := time.Now()
		rec, err := catalog.NewRecord(in.Diagram, in.Family)
		canonTime := time.Since(canonStart)
		result.Stats.CanonTime += canonTime
		observability.Classifier().OnCanonicalized(ctx, runID, canonTime, err)
		if err != nil {
			result.Stats.Failed++
			logger.Warn("skipping diagram", "run", runID, "family", in.Family, "err", err)
			continue
		}

		storeStart := time.Now()
		added, err := r.Store.Put(ctx, rec)
		result.Stats.StoreTime += time.Since(storeStart)
		if err != nil {
			observability.Catalog().OnError(ctx, "put", err)
			return nil, fmt.Errorf("catalog put: %w", err)
		}
		if added {
			result.Stats.Added++
			result.Records = append(result.Records, rec)
			observability.Catalog().OnAdd(ctx, rec.Digest)
			logger.Debug("catalogued new form", "run", runID, "family", in.Family, "digest", rec.Digest)
		} else {
			result.Stats.Duplicates++
			observability.Catalog().OnHit(ctx, rec.Digest)
			logger.Debug("duplicate form", "run", runID, "family", in.Family, "digest", rec.Digest)
		}
	}

	duration := time.Since(start)
	observability.Classifier().OnRunComplete(ctx, runID,
		result.Stats.Added, result.Stats.Duplicates, result.Stats.Failed, duration)

	logger.Info("classified diagrams",
		"run", runID,
		"total", result.Stats.Total,
		"new", result.Stats.Added,
		"duplicates", result.Stats.Duplicates,
		"failed", result.Stats.Failed,
		"duration", duration)

	return result, nil
}
