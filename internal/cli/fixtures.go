package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	drifterrors "github.com/driftui/drift/pkg/errors"
)

// fixturesCommand creates the fixture image server command.
func (c *CLI) fixturesCommand() *cobra.Command {
	var (
		addr string
		dir  string
	)

	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "Serve a directory of images for local manifests",
		Long: `Serve a directory of fixture images over HTTP so gallery manifests can
use remote references against a local source. Requests are validated
against path traversal before touching the filesystem.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(dir)
			if err != nil {
				return fmt.Errorf("fixture directory: %w", err)
			}
			if !info.IsDir() {
				return fmt.Errorf("fixture path %s is not a directory", dir)
			}
			return c.serveFixtures(cmd.Context(), addr, dir)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:8390", "listen address")
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory of fixture images")
	return cmd
}

// serveFixtures runs the fixture server until the context is cancelled.
func (c *CLI) serveFixtures(ctx context.Context, addr, dir string) error {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(ctx))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	r.Get("/images/*", func(w http.ResponseWriter, req *http.Request) {
		rel := chi.URLParam(req, "*")
		if err := drifterrors.ValidatePath(rel); err != nil {
			loggerFromContext(req.Context()).Warn("rejected fixture path", "path", rel, "err", err)
			http.Error(w, drifterrors.UserMessage(err), http.StatusBadRequest)
			return
		}
		http.ServeFile(w, req, filepath.Join(dir, filepath.FromSlash(rel)))
	})

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	printSuccess("Serving fixtures from %s", dir)
	printDetail("http://%s/images/<name>", addr)
	printNextStep("Point a manifest at it", fmt.Sprintf("image = \"http://%s/images/example.jpg\"", addr))
	c.Logger.Info("fixture server listening", "addr", addr, "dir", dir)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		c.Logger.Info("fixture server stopped")
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLogger attaches the CLI logger to each request context and logs the
// request line at debug level.
func requestLogger(ctx context.Context) func(http.Handler) http.Handler {
	logger := loggerFromContext(ctx)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req.WithContext(withLogger(req.Context(), logger)))
			logger.Debug("request",
				"method", req.Method,
				"path", strings.TrimSuffix(req.URL.Path, "/"),
				"elapsed", time.Since(start).Round(time.Millisecond))
		})
	}
}
