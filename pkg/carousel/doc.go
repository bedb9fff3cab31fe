// Package carousel defines the shared vocabulary of the carousel engines:
// item identity, ordered collections, and the declarative configuration
// types for each carousel variant.
//
// # Architecture
//
// The engines under this package (stack, cover, parallax, ambient) are pure
// geometry: they map scroll/gesture state plus a configuration to per-item
// visual parameters (scale, offset, opacity, z-order). They own no rendering
// and hold no per-frame state; the host calls them on every layout pass or
// scroll observation and applies the returned values itself.
//
// Ownership follows a strict caller-owns model:
//   - Configurations are immutable values created once and passed in.
//   - The current index of a stack carousel lives with the host; the engine
//     only proposes new values through its transition functions.
//   - Per-item visual properties are ephemeral and recomputed every call,
//     never stored.
//
// # Configuration
//
// Each variant has a plain config struct with a Default* factory. Engines
// depend only on the fields, never on where the value came from, so configs
// can be built in code or loaded from a TOML manifest with LoadManifestFile.
// Config invariants (ratios in [0, 1], non-negative lengths) are a caller
// contract: engines do not validate and produce visually wrong but
// non-crashing output for malformed values. Use Validate before handing a
// config to an engine if rejection is preferred.
package carousel
