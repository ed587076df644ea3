package archiveserver

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"codequiz/internal/store"
	"codequiz/internal/testutil"
)

// TestServeShutsDownOnContextCancel starts the server, waits for it to
// answer, and cancels the context.
func TestServeShutsDownOnContextCancel(t *testing.T) {
	archive, err := store.Open("", store.Options{})
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer func() { _ = archive.Close() }()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := listener.Addr().String()
	if err := listener.Close(); err != nil {
		t.Fatalf("release port: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- Serve(ctx, Config{Addr: addr, Store: archive, User: "local"})
	}()

	testutil.Eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, "server did not start listening")

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("unexpected serve error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}

// TestServeRejectsMissingAddr fails fast on an incomplete config.
func TestServeRejectsMissingAddr(t *testing.T) {
	archive, err := store.Open("", store.Options{})
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer func() { _ = archive.Close() }()

	ctx := testutil.Context(t, time.Second)
	if err := Serve(ctx, Config{Store: archive}); err == nil {
		t.Fatalf("expected error for missing addr")
	}
}
