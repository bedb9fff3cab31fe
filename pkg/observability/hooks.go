// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout computation, gesture handling, and image
// loading.
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
//	    observability.SetGestureHooks(&myGestureHooks{})
//	    observability.SetImageHooks(&myImageHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Image().OnFetchStart(ctx, url)
//	// ... do fetch ...
//	observability.Image().OnFetchComplete(ctx, url, status, size, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from carousel layout computation.
type LayoutHooks interface {
	// OnIndexChange records a stacked carousel index transition.
	OnIndexChange(ctx context.Context, carouselKind string, from, to int)

	// OnScrollObservation records one continuous scroll sample driving a
	// cover or ambient carousel.
	OnScrollObservation(ctx context.Context, carouselKind string, progress float64)
}

// =============================================================================
// Gesture Hooks
// =============================================================================

// GestureHooks receives events from the pinch-zoom gesture bridge.
type GestureHooks interface {
	// OnEvent records a raw recognizer sample.
	OnEvent(ctx context.Context, kind, phase string)

	// OnAdopt records a state change that cleared the hysteresis filter.
	OnAdopt(ctx context.Context, zoom float64, dragX, dragY float64)

	// OnReset records completion of the snap-back animation.
	OnReset(ctx context.Context)
}

// =============================================================================
// Image Hooks
// =============================================================================

// ImageHooks receives events from image loading and caching.
type ImageHooks interface {
	// OnCacheHit records a cache hit for the given variant.
	OnCacheHit(ctx context.Context, variant string)

	// OnCacheMiss records a cache miss for the given variant.
	OnCacheMiss(ctx context.Context, variant string)

	// OnFetchStart records an outgoing image fetch.
	OnFetchStart(ctx context.Context, url string)

	// OnFetchComplete records a finished image fetch.
	OnFetchComplete(ctx context.Context, url string, statusCode, size int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnIndexChange(context.Context, string, int, int)      {}
func (NoopLayoutHooks) OnScrollObservation(context.Context, string, float64) {}

// NoopGestureHooks is a no-op implementation of GestureHooks.
type NoopGestureHooks struct{}

func (NoopGestureHooks) OnEvent(context.Context, string, string)            {}
func (NoopGestureHooks) OnAdopt(context.Context, float64, float64, float64) {}
func (NoopGestureHooks) OnReset(context.Context)                            {}

// NoopImageHooks is a no-op implementation of ImageHooks.
type NoopImageHooks struct{}

func (NoopImageHooks) OnCacheHit(context.Context, string)   {}
func (NoopImageHooks) OnCacheMiss(context.Context, string)  {}
func (NoopImageHooks) OnFetchStart(context.Context, string) {}
func (NoopImageHooks) OnFetchComplete(context.Context, string, int, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks  LayoutHooks  = NoopLayoutHooks{}
	gestureHooks GestureHooks = NoopGestureHooks{}
	imageHooks   ImageHooks   = NoopImageHooks{}
	hooksMu      sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any layout operations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetGestureHooks registers custom gesture hooks.
// This should be called once at application startup before any gesture handling.
func SetGestureHooks(h GestureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gestureHooks = h
	}
}

// SetImageHooks registers custom image hooks.
// This should be called once at application startup before any image loading.
func SetImageHooks(h ImageHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		imageHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Gesture returns the registered gesture hooks.
func Gesture() GestureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gestureHooks
}

// Image returns the registered image hooks.
func Image() ImageHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return imageHooks
}

// Reset restores all hooks to their no-op defaults. Intended for tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	gestureHooks = NoopGestureHooks{}
	imageHooks = NoopImageHooks{}
}
