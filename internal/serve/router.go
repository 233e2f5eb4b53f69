// Package serve exposes the most recent pipeline report over HTTP,
// adapted from the teacher's server/router.go but routed through
// go-chi/chi rather than a bare http.ServeMux. It is read-only: nothing
// under this package ever mutates a rating.Context.
package serve

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ordorate/internal/rating"
)

// Snapshot holds the latest report an external caller can fetch,
// swapped atomically so concurrent requests never see a torn report.
type Snapshot struct {
	ptr atomic.Pointer[rating.Report]
}

// Store installs report as the current snapshot.
func (s *Snapshot) Store(report *rating.Report) { s.ptr.Store(report) }

// Load returns the current snapshot, or nil if none has been stored.
func (s *Snapshot) Load() *rating.Report { return s.ptr.Load() }

// Router builds the read-only report viewer. snap is shared with
// whatever goroutine produces new reports.
func Router(snap *Snapshot) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/health", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})

	r.Get("/api/report", func(w http.ResponseWriter, req *http.Request) {
		report := snap.Load()
		if report == nil {
			http.Error(w, "no report available yet", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, report)
	})

	r.Get("/api/report/competitor/{name}", func(w http.ResponseWriter, req *http.Request) {
		report := snap.Load()
		if report == nil {
			http.Error(w, "no report available yet", http.StatusServiceUnavailable)
			return
		}
		name := chi.URLParam(req, "name")
		for _, row := range report.Competitors {
			if row.Name == name {
				writeJSON(w, row)
				return
			}
		}
		http.NotFound(w, req)
	})

	r.Get("/api/report/groups", func(w http.ResponseWriter, req *http.Request) {
		report := snap.Load()
		if report == nil {
			http.Error(w, "no report available yet", http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, report.Groups)
	})

	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
