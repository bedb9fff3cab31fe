// Package imageload implements the image-provider capability consumed by
// the carousel demos and hosts: fetching remote image references over HTTP
// with retry and caching, decoding them, and producing downscaled
// thumbnail variants.
//
// The loader only serves the remote classification path; bundled assets
// and symbolic fallbacks are the host's concern (see package imageref for
// the classification policy).
//
// Fetches are cached as raw bytes keyed by source URL, thumbnails as a
// separate variant key, so a cache hit never touches the network.
package imageload
