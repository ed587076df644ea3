package archiveserver

import (
	"errors"
	"net/http"

	"codequiz/internal/store"
)

// NewHandler builds the HTTP handler for browsing the challenge archive.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Store == nil {
		return nil, errors.New("archiveserver: store is required")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", serveIndex(cfg))
	mux.HandleFunc("GET /challenge/{id}", serveChallenge(cfg))
	return mux, nil
}

// serveIndex renders the archived challenge list.
func serveIndex(cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		challenges, err := cfg.Store.ListChallenges(r.Context(), cfg.User)
		if err != nil {
			http.Error(w, "failed to list challenges", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexPage(challenges).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	}
}

// serveChallenge renders one archived challenge.
func serveChallenge(cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		c, err := cfg.Store.GetChallenge(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			http.Error(w, "failed to load challenge", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := challengePage(c).Render(r.Context(), w); err != nil {
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	}
}
