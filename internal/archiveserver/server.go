package archiveserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"codequiz/internal/store"
)

// Config captures the settings for serving the challenge archive.
type Config struct {
	Addr  string
	Store *store.Store
	User  string
}

// Serve starts an HTTP server that hosts a read-only view of the archive.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("archiveserver: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("archiveserver: addr is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}
