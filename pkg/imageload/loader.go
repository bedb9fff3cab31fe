package imageload

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"net/http"
	"time"

	// Register the remaining decoders for the formats galleries ship.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/charmbracelet/log"
	"golang.org/x/image/draw"

	"github.com/driftui/drift/pkg/errors"
	"github.com/driftui/drift/pkg/imagecache"
	"github.com/driftui/drift/pkg/observability"
)

// Defaults for loader construction.
const (
	// DefaultTimeout bounds a single fetch attempt.
	DefaultTimeout = 15 * time.Second

	// DefaultTTL is how long cached image bytes stay fresh.
	DefaultTTL = 24 * time.Hour

	// DefaultRetryAttempts for transient fetch failures.
	DefaultRetryAttempts = 3

	// maxBodySize caps a fetched image at 32 MiB; anything larger is
	// rejected rather than buffered.
	maxBodySize = 32 << 20
)

// Loader fetches remote image references with retry and caching.
type Loader struct {
	client *http.Client
	cache  imagecache.Cache
	keyer  imagecache.Keyer
	ttl    time.Duration
	logger *log.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient overrides the HTTP client used for fetches.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.client = c }
}

// WithTTL overrides the cache TTL for fetched bytes.
func WithTTL(ttl time.Duration) Option {
	return func(l *Loader) { l.ttl = ttl }
}

// WithKeyer overrides the cache key scheme.
func WithKeyer(k imagecache.Keyer) Option {
	return func(l *Loader) { l.keyer = k }
}

// NewLoader creates a loader over the given cache. A nil cache disables
// caching; a nil logger discards log output.
func NewLoader(cache imagecache.Cache, logger *log.Logger, opts ...Option) *Loader {
	if cache == nil {
		cache = imagecache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	l := &Loader{
		client: &http.Client{Timeout: DefaultTimeout},
		cache:  cache,
		keyer:  imagecache.NewDefaultKeyer(),
		ttl:    DefaultTTL,
		logger: logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Fetch returns the raw encoded bytes of the image at url, from cache when
// possible. Transient failures (network errors, 5xx) are retried with
// exponential backoff; 4xx responses fail immediately.
func (l *Loader) Fetch(ctx context.Context, url string) ([]byte, error) {
	key := l.keyer.OriginalKey(url)

	if data, ok, err := l.cache.Get(ctx, key); err == nil && ok {
		observability.Image().OnCacheHit(ctx, "original")
		l.logger.Debug("image cache hit", "url", url, "bytes", len(data))
		return data, nil
	}
	observability.Image().OnCacheMiss(ctx, "original")

	var data []byte
	err := Retry(ctx, DefaultRetryAttempts, time.Second, func() error {
		var ferr error
		data, ferr = l.fetchOnce(ctx, url)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	if err := l.cache.Set(ctx, key, data, l.ttl); err != nil {
		// A failed cache write degrades to uncached operation.
		l.logger.Warn("image cache write failed", "url", url, "err", err)
	}
	return data, nil
}

func (l *Loader) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidReference, err, "build request for %s", url)
	}

	observability.Image().OnFetchStart(ctx, url)
	resp, err := l.client.Do(req)
	if err != nil {
		observability.Image().OnFetchComplete(ctx, url, 0, 0, time.Since(start), err)
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", url)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		err := errors.New(errors.ErrCodeNetwork, "fetch %s: status %d", url, resp.StatusCode)
		observability.Image().OnFetchComplete(ctx, url, resp.StatusCode, 0, time.Since(start), err)
		return nil, &RetryableError{Err: err}
	case resp.StatusCode == http.StatusNotFound:
		err := errors.New(errors.ErrCodeNotFound, "fetch %s: not found", url)
		observability.Image().OnFetchComplete(ctx, url, resp.StatusCode, 0, time.Since(start), err)
		return nil, err
	case resp.StatusCode != http.StatusOK:
		err := errors.New(errors.ErrCodeNetwork, "fetch %s: status %d", url, resp.StatusCode)
		observability.Image().OnFetchComplete(ctx, url, resp.StatusCode, 0, time.Since(start), err)
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		observability.Image().OnFetchComplete(ctx, url, resp.StatusCode, 0, time.Since(start), err)
		return nil, &RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "read %s", url)}
	}
	if len(data) > maxBodySize {
		err := errors.New(errors.ErrCodeInvalidImage, "fetch %s: image exceeds %d bytes", url, maxBodySize)
		observability.Image().OnFetchComplete(ctx, url, resp.StatusCode, len(data), time.Since(start), err)
		return nil, err
	}

	observability.Image().OnFetchComplete(ctx, url, resp.StatusCode, len(data), time.Since(start), nil)
	l.logger.Debug("image fetched", "url", url, "bytes", len(data), "elapsed", time.Since(start).Round(time.Millisecond))
	return data, nil
}

// Decode parses encoded image bytes into an image.Image.
func Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidImage, err, "decode image")
	}
	return img, nil
}

// Thumbnail downscales img to fit within maxWidth×maxHeight, preserving
// aspect ratio. Images already inside the bounds are returned unchanged.
func Thumbnail(img image.Image, maxWidth, maxHeight int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxWidth && h <= maxHeight {
		return img
	}

	scale := min(float64(maxWidth)/float64(w), float64(maxHeight)/float64(h))
	dw := max(1, int(float64(w)*scale))
	dh := max(1, int(float64(h)*scale))

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

// FetchThumbnail fetches, decodes, and downscales in one step, caching the
// encoded thumbnail under its own variant key.
func (l *Loader) FetchThumbnail(ctx context.Context, url string, maxWidth, maxHeight int) (image.Image, error) {
	key := l.keyer.ThumbKey(url, maxWidth, maxHeight)

	if data, ok, err := l.cache.Get(ctx, key); err == nil && ok {
		observability.Image().OnCacheHit(ctx, "thumb")
		img, derr := Decode(data)
		if derr == nil {
			return img, nil
		}
		// Corrupt cached thumbnail: fall through to recompute.
		l.logger.Warn("corrupt cached thumbnail", "url", url, "err", derr)
	} else {
		observability.Image().OnCacheMiss(ctx, "thumb")
	}

	data, err := l.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	thumb := Thumbnail(img, maxWidth, maxHeight)

	if encoded, err := encodePNG(thumb); err == nil {
		if err := l.cache.Set(ctx, key, encoded, l.ttl); err != nil {
			l.logger.Warn("thumbnail cache write failed", "url", url, "err", err)
		}
	}
	return thumb, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
