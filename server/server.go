// Package server exposes the aggregator service that collects completed work
// sessions from every device a user signs in on
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// Options configures the router.
type Options struct {
	Repo        Repository
	Verifier    Verifier
	Log         *slog.Logger
	Now         func() time.Time
	CORSOrigins []string
}

// New returns the aggregator router.
func New(opts Options) *gin.Engine {
	if opts.Log == nil {
		opts.Log = slog.Default()
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(opts.Log), cors(opts.CORSOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &sessionHandler{
		repo: opts.Repo,
		log:  opts.Log,
		now:  opts.Now,
	}

	api := engine.Group("/api")
	api.Use(auth(opts.Verifier))
	api.POST("/sessions", h.record)
	api.GET("/sessions", h.list)
	api.GET("/stats", h.stats)

	return engine
}

// Serve runs handler on addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, log *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		log.Info("aggregator listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("aggregator shutting down")

	return srv.Shutdown(shutdownCtx)
}
