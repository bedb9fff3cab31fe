// Package pkg provides the core libraries for drift carousel layouts.
//
// # Overview
//
// Drift turns declarative gallery descriptions into per-card layout
// parameters for a rendering host. The engines are pure functions over
// caller-owned state: the host observes scroll offsets and gestures, asks
// the engines what each card should look like, and commits the results to
// its own view tree. The pkg directory is organized into five areas:
//
//  1. [carousel] - Item model, manifests, and the layout engines
//  2. [gesture] - Pinch-zoom bridge: reducer, hysteresis filter, snap-back tween
//  3. [imageref], [imageload], [imagecache] - Image reference resolution, fetching, caching
//  4. [grid] - Adaptive tiling layouts
//  5. [geom], [errors], [observability], [buildinfo] - Shared foundations
//
// # Architecture
//
// The typical data flow through drift:
//
//	TOML manifest
//	         ↓
//	    [carousel] package (items + per-variant configuration)
//	         ↓
//	    [carousel/stack], [carousel/cover], [carousel/parallax], [carousel/ambient]
//	         ↓
//	    per-card visual parameters for the host to render
//
// Image references resolve independently of layout:
//
//	item.Image → [imageref] (remote | asset | symbol)
//	               ↓ remote only
//	           [imageload] (fetch, retry, thumbnail) over [imagecache]
//
// # Quick Start
//
// Load a gallery and compute the stacked-deck parameters for one card:
//
//	import (
//	    "github.com/driftui/drift/pkg/carousel"
//	    "github.com/driftui/drift/pkg/carousel/stack"
//	)
//
//	m, _ := carousel.LoadManifestFile("gallery.toml")
//	for i := range m.Items {
//	    props := stack.VisualProps(i-current, len(m.Items), m.Stack)
//	    // render m.Items[i] with props.Scale, props.XOffset, props.ZIndex
//	}
//
// # Main Packages
//
// [carousel] - The item model (stable identity tokens, TOML manifests,
// opt-in validation) and the configuration types shared by all engines.
//
// [carousel/stack] - Stacked deck: discrete current index, per-card scale
// and offset from index distance, drag and tap transitions.
//
// [carousel/cover] - Cover flow: continuous per-card metrics (width, scale,
// opacity, mask, offset correction) recomputed from the live scroll offset.
//
// [carousel/parallax] - Inner-content parallax offset for cover cards.
//
// [carousel/ambient] - Backdrop crossfade weights, composite order, and the
// blur/darken/gradient overlay description.
//
// [gesture] - The pinch-zoom bridge: a pure reducer from recognizer samples
// to a zoom state, a hysteresis filter for render adoption, and the
// snap-back tween.
//
// [imageref] - Classifies image references as remote URL, bundled asset, or
// symbol fallback. [imageload] fetches remote references with retry and
// caching; [imagecache] provides file, memory, Redis, and null backends.
//
// [grid] - Adaptive tiling: container width and minimum item width to
// columns, cell sizes, and per-item frames.
//
// [observability] - Hook interfaces for layout, gesture, and image events,
// registered by the host at startup.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/carousel/...  # Engines only
//	go test -run Example        # Examples only
//
// [carousel]: https://pkg.go.dev/github.com/driftui/drift/pkg/carousel
// [carousel/stack]: https://pkg.go.dev/github.com/driftui/drift/pkg/carousel/stack
// [carousel/cover]: https://pkg.go.dev/github.com/driftui/drift/pkg/carousel/cover
// [carousel/parallax]: https://pkg.go.dev/github.com/driftui/drift/pkg/carousel/parallax
// [carousel/ambient]: https://pkg.go.dev/github.com/driftui/drift/pkg/carousel/ambient
// [gesture]: https://pkg.go.dev/github.com/driftui/drift/pkg/gesture
// [imageref]: https://pkg.go.dev/github.com/driftui/drift/pkg/imageref
// [imageload]: https://pkg.go.dev/github.com/driftui/drift/pkg/imageload
// [imagecache]: https://pkg.go.dev/github.com/driftui/drift/pkg/imagecache
// [grid]: https://pkg.go.dev/github.com/driftui/drift/pkg/grid
// [geom]: https://pkg.go.dev/github.com/driftui/drift/pkg/geom
// [errors]: https://pkg.go.dev/github.com/driftui/drift/pkg/errors
// [observability]: https://pkg.go.dev/github.com/driftui/drift/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/driftui/drift/pkg/buildinfo
package pkg
