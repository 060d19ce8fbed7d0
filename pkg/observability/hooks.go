// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about classification runs and
// catalog operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetClassifierHooks(&myClassifierHooks{})
//	    observability.SetCatalogHooks(&myCatalogHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Classifier().OnRunStart(ctx, runID, total)
//	// ... classify ...
//	observability.Classifier().OnRunComplete(ctx, runID, kept, dups, failed, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Classifier Hooks
// =============================================================================

// ClassifierHooks receives events from classification runs.
type ClassifierHooks interface {
	// OnRunStart records the beginning of a run over total diagrams.
	OnRunStart(ctx context.Context, runID string, total int)

	// OnCanonicalized records one canonicalization attempt.
	OnCanonicalized(ctx context.Context, runID string, duration time.Duration, err error)

	// OnRunComplete records the run outcome.
	OnRunComplete(ctx context.Context, runID string, kept, duplicates, failed int, duration time.Duration)
}

// =============================================================================
// Catalog Hooks
// =============================================================================

// CatalogHooks receives events from catalog operations.
type CatalogHooks interface {
	// OnAdd records a newly catalogued canonical form.
	OnAdd(ctx context.Context, digest string)

	// OnHit records a digest that was already catalogued.
	OnHit(ctx context.Context, digest string)

	// OnError records a failed store operation.
	OnError(ctx context.Context, op string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopClassifierHooks is a no-op implementation of ClassifierHooks.
type NoopClassifierHooks struct{}

func (NoopClassifierHooks) OnRunStart(context.Context, string, int)                        {}
func (NoopClassifierHooks) OnCanonicalized(context.Context, string, time.Duration, error)  {}
func (NoopClassifierHooks) OnRunComplete(context.Context, string, int, int, int, time.Duration) {
}

// NoopCatalogHooks is a no-op implementation of CatalogHooks.
type NoopCatalogHooks struct{}

func (NoopCatalogHooks) OnAdd(context.Context, string)          {}
func (NoopCatalogHooks) OnHit(context.Context, string)          {}
func (NoopCatalogHooks) OnError(context.Context, string, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	classifierHooks ClassifierHooks = NoopClassifierHooks{}
	catalogHooks    CatalogHooks    = NoopCatalogHooks{}
	hooksMu         sync.RWMutex
)

// SetClassifierHooks registers custom classifier hooks.
// This should be called once at application startup before any runs.
func SetClassifierHooks(h ClassifierHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		classifierHooks = h
	}
}

// SetCatalogHooks registers custom catalog hooks.
// This should be called once at application startup before any catalog
// operations.
func SetCatalogHooks(h CatalogHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		catalogHooks = h
	}
}

// Classifier returns the registered classifier hooks.
func Classifier() ClassifierHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return classifierHooks
}

// Catalog returns the registered catalog hooks.
func Catalog() CatalogHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return catalogHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	classifierHooks = NoopClassifierHooks{}
	catalogHooks = NoopCatalogHooks{}
}
